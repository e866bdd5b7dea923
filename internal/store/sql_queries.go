package store

const (
	insertTransaction = `
		INSERT INTO transactions (
			id,
			type,
			amount,
			description,
			category,
			date,
			notes,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`

	selectTransaction = `
		SELECT
			id,
			type,
			amount,
			description,
			category,
			date,
			notes,
			created_at,
			updated_at
		FROM transactions
		WHERE id = ?;`

	selectAllTransactions = `
		SELECT
			id,
			type,
			amount,
			description,
			category,
			date,
			notes,
			created_at,
			updated_at
		FROM transactions
		ORDER BY date DESC, id;`

	updateTransaction = `
		UPDATE transactions SET
			type        = ?,
			amount      = ?,
			description = ?,
			category    = ?,
			date        = ?,
			notes       = ?,
			updated_at  = ?
		WHERE id = ?;`

	deleteTransaction     = `DELETE FROM transactions WHERE id = ?;`
	deleteAllTransactions = `DELETE FROM transactions;`

	insertCategory = `
		INSERT INTO categories (id, name, type, color, icon, created_at)
		VALUES (?, ?, ?, ?, ?, ?);`

	selectCategory = `
		SELECT id, name, type, color, icon, created_at
		FROM categories
		WHERE id = ?;`

	selectAllCategories = `
		SELECT id, name, type, color, icon, created_at
		FROM categories
		ORDER BY name, id;`

	updateCategory = `
		UPDATE categories SET
			name  = ?,
			type  = ?,
			color = ?,
			icon  = ?
		WHERE id = ?;`

	deleteCategory      = `DELETE FROM categories WHERE id = ?;`
	deleteAllCategories = `DELETE FROM categories;`

	insertAccount = `
		INSERT INTO accounts (id, name, type, balance, currency, created_at)
		VALUES (?, ?, ?, ?, ?, ?);`

	selectAccount = `
		SELECT id, name, type, balance, currency, created_at
		FROM accounts
		WHERE id = ?;`

	selectAllAccounts = `
		SELECT id, name, type, balance, currency, created_at
		FROM accounts
		ORDER BY name, id;`

	updateAccount = `
		UPDATE accounts SET
			name     = ?,
			type     = ?,
			balance  = ?,
			currency = ?
		WHERE id = ?;`

	deleteAccount      = `DELETE FROM accounts WHERE id = ?;`
	deleteAllAccounts  = `DELETE FROM accounts;`

	selectAllSettings = `SELECT key, value FROM settings;`

	upsertSetting = `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	deleteAllSettings = `DELETE FROM settings;`

	selectDeviceID = `SELECT device_id FROM device WHERE id = 1;`

	upsertDeviceID = `
		INSERT INTO device (id, device_id, created_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET device_id = excluded.device_id, created_at = excluded.created_at;`

	deleteDeviceID = `DELETE FROM device WHERE id = 1;`

	selectLastSyncTime = `SELECT last_sync_time FROM sync_state WHERE id = 1;`

	upsertLastSyncTime = `
		INSERT INTO sync_state (id, last_sync_time) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET last_sync_time = excluded.last_sync_time;`

	insertSyncQueueEntry = `
		INSERT INTO sync_queue (id, timestamp, action, device_id)
		VALUES (?, ?, ?, ?);`

	selectPendingSyncQueue = `
		SELECT id, timestamp, action, device_id
		FROM sync_queue
		ORDER BY timestamp, id;`

	clearSyncQueue = `DELETE FROM sync_queue;`
)
