// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

// create a table for committed notifications
const eventTableSchema = `
create table if not exists event (
	seq integer primary key,
	time integer not null,
	name text not null,
	account blob(20),
	target blob(32),
	data text not null
);

CREATE INDEX if not exists nameIndex on event(name);
CREATE INDEX if not exists accountIndex on event(account);
CREATE INDEX if not exists targetIndex on event(target);
`
