package file

const (
	SelectFileByID = `
		SELECT id, uuid, owner_id, name, kind, parent_id, is_public, storage_path, created_at
		FROM files
		WHERE uuid = $1
	`
	SelectFiles = `
		SELECT id, uuid, owner_id, name, kind, parent_id, is_public, storage_path, created_at
		FROM files
		WHERE owner_id = $1 AND parent_id IS NOT DISTINCT FROM $2
		ORDER BY id
		LIMIT 20 OFFSET ( $3 * 20 )
	`
	InsertFile = `
		INSERT INTO files (owner_id, name, kind, parent_id, is_public, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, uuid, owner_id, name, kind, parent_id, is_public, storage_path, created_at
	`
	SelectCountFiles = `
		SELECT count(*) FROM files
	`
	UpdateVisibilityByUUID = `
		UPDATE files
		SET is_public = $2
		WHERE uuid = $1
		RETURNING
		  id, uuid, owner_id, name, kind, parent_id, is_public, storage_path, created_at
	`
)
