package database

var postgresMigrations = []Migration{
	{
		Name: "001_init",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id BIGSERIAL PRIMARY KEY,
				email TEXT UNIQUE NOT NULL,
				password_hash TEXT NOT NULL DEFAULT '',
				first_name TEXT NOT NULL DEFAULT '',
				last_name TEXT NOT NULL DEFAULT '',
				avatar_url TEXT NOT NULL DEFAULT '',
				oauth_provider TEXT NOT NULL DEFAULT '',
				oauth_subject TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
			);`,
			`CREATE TABLE IF NOT EXISTS sessions (
				id TEXT PRIMARY KEY,
				user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				expires_at TIMESTAMPTZ NOT NULL,
				created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
			);`,
			`CREATE TABLE IF NOT EXISTS couples (
				id BIGSERIAL PRIMARY KEY,
				user1_id BIGINT NOT NULL REFERENCES users(id),
				user2_id BIGINT NOT NULL REFERENCES users(id),
				created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
			);`,
			`CREATE TABLE IF NOT EXISTS couple_invites (
				id BIGSERIAL PRIMARY KEY,
				user_id BIGINT NOT NULL REFERENCES users(id),
				invite_code TEXT UNIQUE NOT NULL,
				inviter_name TEXT,
				mode TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'pending',
				created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
			);`,
			`CREATE TABLE IF NOT EXISTS events (
				id BIGSERIAL PRIMARY KEY,
				owner_id BIGINT NOT NULL REFERENCES users(id),
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				event_date TIMESTAMPTZ NOT NULL,
				location TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
			);`,
			`CREATE TABLE IF NOT EXISTS todos (
				id BIGSERIAL PRIMARY KEY,
				owner_id BIGINT NOT NULL REFERENCES users(id),
				title TEXT NOT NULL,
				due_date TIMESTAMPTZ,
				completed BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
			);`,
			`CREATE TABLE IF NOT EXISTS travels (
				id BIGSERIAL PRIMARY KEY,
				owner_id BIGINT NOT NULL REFERENCES users(id),
				title TEXT NOT NULL,
				destination TEXT NOT NULL DEFAULT '',
				start_date TIMESTAMPTZ,
				end_date TIMESTAMPTZ,
				notes TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
			);`,
			`CREATE TABLE IF NOT EXISTS invitation_cards (
				id BIGSERIAL PRIMARY KEY,
				owner_id BIGINT NOT NULL REFERENCES users(id),
				title TEXT NOT NULL,
				theme TEXT NOT NULL DEFAULT 'classic',
				message TEXT NOT NULL DEFAULT '',
				event_date TIMESTAMPTZ,
				venue TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
			);`,
			`CREATE TABLE IF NOT EXISTS guestbook_entries (
				id BIGSERIAL PRIMARY KEY,
				owner_id BIGINT NOT NULL REFERENCES users(id),
				author_name TEXT NOT NULL DEFAULT '',
				message TEXT NOT NULL,
				created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
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
				id BIGSERIAL PRIMARY KEY,
				travel_id BIGINT NOT NULL REFERENCES travels(id) ON DELETE CASCADE,
				photo_url TEXT NOT NULL,
				created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
			);`,
			`CREATE INDEX IF NOT EXISTS idx_travel_photos_travel_id ON travel_photos(travel_id);`,
		},
	},
}
