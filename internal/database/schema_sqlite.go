package database

var sqliteMigrations = []Migration{
	{
		Name: "001_init",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				email TEXT UNIQUE NOT NULL,
				password_hash TEXT NOT NULL DEFAULT '',
				first_name TEXT NOT NULL DEFAULT '',
				last_name TEXT NOT NULL DEFAULT '',
				avatar_url TEXT NOT NULL DEFAULT '',
				oauth_provider TEXT NOT NULL DEFAULT '',
				oauth_subject TEXT NOT NULL DEFAULT '',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);`,
			`CREATE TABLE IF NOT EXISTS sessions (
				id TEXT PRIMARY KEY,
				user_id INTEGER NOT NULL,
				expires_at DATETIME NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			);`,
			`CREATE TABLE IF NOT EXISTS couples (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user1_id INTEGER NOT NULL,
				user2_id INTEGER NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user1_id) REFERENCES users(id),
				FOREIGN KEY (user2_id) REFERENCES users(id)
			);`,
			`CREATE TABLE IF NOT EXISTS couple_invites (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL,
				invite_code TEXT UNIQUE NOT NULL,
				inviter_name TEXT,
				mode TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'pending',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id)
			);`,
			`CREATE TABLE IF NOT EXISTS events (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				owner_id INTEGER NOT NULL,
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				event_date DATETIME NOT NULL,
				location TEXT NOT NULL DEFAULT '',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (owner_id) REFERENCES users(id)
			);`,
			`CREATE TABLE IF NOT EXISTS todos (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				owner_id INTEGER NOT NULL,
				title TEXT NOT NULL,
				due_date DATETIME,
				completed INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (owner_id) REFERENCES users(id)
			);`,
			`CREATE TABLE IF NOT EXISTS travels (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				owner_id INTEGER NOT NULL,
				title TEXT NOT NULL,
				destination TEXT NOT NULL DEFAULT '',
				start_date DATETIME,
				end_date DATETIME,
				notes TEXT NOT NULL DEFAULT '',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (owner_id) REFERENCES users(id)
			);`,
			`CREATE TABLE IF NOT EXISTS invitation_cards (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				owner_id INTEGER NOT NULL,
				title TEXT NOT NULL,
				theme TEXT NOT NULL DEFAULT 'classic',
				message TEXT NOT NULL DEFAULT '',
				event_date DATETIME,
				venue TEXT NOT NULL DEFAULT '',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (owner_id) REFERENCES users(id)
			);`,
			`CREATE TABLE IF NOT EXISTS guestbook_entries (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				owner_id INTEGER NOT NULL,
				author_name TEXT NOT NULL DEFAULT '',
				message TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (owner_id) REFERENCES users(id)
			);`,
			`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id);`,
			`CREATE INDEX IF NOT EXISTS idx_couples_user1_id ON couples(user1_id);`,
			`CREATE INDEX IF NOT EXISTS idx_couples_user2_id ON couples(user2_id);`,
			`CREATE INDEX IF NOT EXISTS idx_couple_invites_user_id ON couple_invites(user_id);`,
			`CREATE INDEX IF NOT EXISTS idx_events_owner_id ON events(owner_id);`,
			`CREATE INDEX IF NOT EXISTS idx_todos_owner_id ON todos(owner_id);`,
			`CREATE INDEX IF NOT EXISTS idx_travels_owner_id ON travels(owner_id);`,
			`CREATE INDEX IF NOT EXISTS idx_invitation_cards_owner_id ON invitation_cards(owner_id);`,
			`CREATE INDEX IF NOT EXISTS idx_guestbook_entries_owner_id ON guestbook_entries(owner_id);`,
		},
	},
	{
		Name: "002_travel_photos",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS travel_photos (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				travel_id INTEGER NOT NULL,
				photo_url TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (travel_id) REFERENCES travels(id) ON DELETE CASCADE
			);`,
			`CREATE INDEX IF NOT EXISTS idx_travel_photos_travel_id ON travel_photos(travel_id);`,
		},
	},
}
