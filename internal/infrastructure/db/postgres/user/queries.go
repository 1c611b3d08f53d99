package user

const (
	SelectUsers = `
		SELECT id, name, email, created_at, updated_at, deleted_at
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY created_at
	`
	SelectUserByID = `
		SELECT id, name, email, created_at, updated_at, deleted_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`
	SelectUserByEmail = `
		SELECT id, name, email, created_at, updated_at, deleted_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`
	InsertUser = `
		INSERT INTO users (id, name, email, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, name, email, created_at, updated_at, deleted_at
	`
	UpdateUserByID = `
		UPDATE users
		SET name = $1,
		    email = $2,
		    updated_at = $3
		WHERE id = $4 AND deleted_at IS NULL
		RETURNING
		  id, name, email, created_at, updated_at, deleted_at
	`
	SoftDeleteUserByID = `
		UPDATE users
		SET deleted_at = $1
		WHERE id = $2 AND deleted_at IS NULL
		RETURNING
		  id, name, email, created_at, updated_at, deleted_at
	`
)
