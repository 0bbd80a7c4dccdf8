package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS scenarios (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL UNIQUE,
    principal            REAL NOT NULL,
    current_age          REAL NOT NULL,
    annual_rate_pct      REAL NOT NULL,
    monthly_contribution REAL NOT NULL,
    target_age           REAL NOT NULL,
    goal                 REAL,
    fallback_years       REAL,
    created_at           TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scenarios_updated ON scenarios(updated_at);
`
