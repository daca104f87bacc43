package database

var mysqlMigrations = []Migration{
	{
		Name: "001_init",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				email VARCHAR(255) UNIQUE NOT NULL,
				password_hash VARCHAR(255) NOT NULL DEFAULT '',
				first_name VARCHAR(100) NOT NULL DEFAULT '',
				last_name VARCHAR(100) NOT NULL DEFAULT '',
				avatar_url VARCHAR(512) NOT NULL DEFAULT '',
				oauth_provider VARCHAR(32) NOT NULL DEFAULT '',
				oauth_subject VARCHAR(255) NOT NULL DEFAULT '',
				created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				updated_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)
			);`,
			`CREATE TABLE IF NOT EXISTS sessions (
				id VARCHAR(64) PRIMARY KEY,
				user_id BIGINT NOT NULL,
				expires_at DATETIME(6) NOT NULL,
				created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			);`,
			`CREATE TABLE IF NOT EXISTS couples (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				user1_id BIGINT NOT NULL,
				user2_id BIGINT NOT NULL,
				created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				FOREIGN KEY (user1_id) REFERENCES users(id),
				FOREIGN KEY (user2_id) REFERENCES users(id)
			);`,
			`CREATE TABLE IF NOT EXISTS couple_invites (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				user_id BIGINT NOT NULL,
				invite_code VARCHAR(32) UNIQUE NOT NULL,
				inviter_name VARCHAR(100),
				mode VARCHAR(32) NOT NULL,
				status VARCHAR(16) NOT NULL DEFAULT 'pending',
				created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				FOREIGN KEY (user_id) REFERENCES users(id)
			);`,
			`CREATE TABLE IF NOT EXISTS events (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				owner_id BIGINT NOT NULL,
				title VARCHAR(255) NOT NULL,
				description TEXT,
				event_date DATETIME(6) NOT NULL,
				location VARCHAR(255) NOT NULL DEFAULT '',
				created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				updated_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				FOREIGN KEY (owner_id) REFERENCES users(id)
			);`,
			`CREATE TABLE IF NOT EXISTS todos (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				owner_id BIGINT NOT NULL,
				title VARCHAR(255) NOT NULL,
				due_date DATETIME(6),
				completed BOOLEAN NOT NULL DEFAULT FALSE,
				created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				updated_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				FOREIGN KEY (owner_id) REFERENCES users(id)
			);`,
			`CREATE TABLE IF NOT EXISTS travels (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				owner_id BIGINT NOT NULL,
				title VARCHAR(255) NOT NULL,
				destination VARCHAR(255) NOT NULL DEFAULT '',
				start_date DATETIME(6),
				end_date DATETIME(6),
				notes TEXT,
				created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				updated_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				FOREIGN KEY (owner_id) REFERENCES users(id)
			);`,
			`CREATE TABLE IF NOT EXISTS invitation_cards (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				owner_id BIGINT NOT NULL,
				title VARCHAR(255) NOT NULL,
				theme VARCHAR(64) NOT NULL DEFAULT 'classic',
				message TEXT,
				event_date DATETIME(6),
				venue VARCHAR(255) NOT NULL DEFAULT '',
				created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				updated_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				FOREIGN KEY (owner_id) REFERENCES users(id)
			);`,
			`CREATE TABLE IF NOT EXISTS guestbook_entries (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				owner_id BIGINT NOT NULL,
				author_name VARCHAR(100) NOT NULL DEFAULT '',
				message TEXT NOT NULL,
				created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				FOREIGN KEY (owner_id) REFERENCES users(id)
			);`,
			`CREATE INDEX idx_couples_user1_id ON couples(user1_id);`,
			`CREATE INDEX idx_couples_user2_id ON couples(user2_id);`,
			`CREATE INDEX idx_couple_invites_user_id ON couple_invites(user_id);`,
			`CREATE INDEX idx_events_owner_id ON events(owner_id);`,
			`CREATE INDEX idx_todos_owner_id ON todos(owner_id);`,
			`CREATE INDEX idx_travels_owner_id ON travels(owner_id);`,
			`CREATE INDEX idx_invitation_cards_owner_id ON invitation_cards(owner_id);`,
			`CREATE INDEX idx_guestbook_entries_owner_id ON guestbook_entries(owner_id);`,
		},
	},
	{
		Name: "002_travel_photos",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS travel_photos (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				travel_id BIGINT NOT NULL,
				photo_url VARCHAR(512) NOT NULL,
				created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
				FOREIGN KEY (travel_id) REFERENCES travels(id) ON DELETE CASCADE
			);`,
			`CREATE INDEX idx_travel_photos_travel_id ON travel_photos(travel_id);`,
		},
	},
}
