package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS projects (
    name                 TEXT PRIMARY KEY,
    data                 TEXT NOT NULL,
    creation_date        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS time_entries (
    id                   TEXT PRIMARY KEY,
    project              TEXT NOT NULL,
    resource             TEXT NOT NULL,
    phase                TEXT NOT NULL,
    entry_date           TEXT NOT NULL,
    hours                REAL NOT NULL,
    description          TEXT,
    entry_time           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS team_members (
    name                 TEXT PRIMARY KEY,
    role                 TEXT NOT NULL,
    availability_hours   REAL NOT NULL,
    hourly_rate          REAL NOT NULL,
    data                 TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS schedule_entries (
    id                   TEXT PRIMARY KEY,
    team_member          TEXT NOT NULL,
    project              TEXT NOT NULL,
    start_date           TEXT NOT NULL,
    end_date             TEXT NOT NULL,
    hours_per_day        REAL NOT NULL,
    phase                TEXT NOT NULL,
    status               TEXT NOT NULL,
    data                 TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_time_entries_project ON time_entries(project);
CREATE INDEX IF NOT EXISTS idx_time_entries_date ON time_entries(entry_date);
CREATE INDEX IF NOT EXISTS idx_schedule_member ON schedule_entries(team_member);
`
