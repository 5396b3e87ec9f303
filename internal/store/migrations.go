package store

// migration is a single schema change applied in order of Version.
type migration struct {
	Version int
	Name    string
	SQL     string
}

var migrations = []migration{
	{
		Version: 1,
		Name:    "channels",
		SQL: `
			CREATE TABLE channels (
				channel_id INTEGER PRIMARY KEY,
				title      TEXT NOT NULL,
				added_at   TEXT NOT NULL DEFAULT (datetime('now'))
			);
		`,
	},
	{
		Version: 2,
		Name:    "default_buttons",
		SQL: `
			CREATE TABLE default_buttons (
				user_id     INTEGER PRIMARY KEY,
				button_text TEXT NOT NULL,
				updated_at  TEXT NOT NULL DEFAULT (datetime('now'))
			);
		`,
	},
}
