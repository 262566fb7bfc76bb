package store

const (
	userColumns = `user_id, name, email, password_hash, role, reset_token_hash, reset_token_expiry, created_at`

	createUser = `INSERT INTO users (name, email, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	updatePassword = `UPDATE users
    SET password_hash = $1
    WHERE user_id = $2;`

	// Overwrites any pending reset token: only the latest secret stays valid.
	setResetToken = `UPDATE users
    SET reset_token_hash = $1, reset_token_expiry = $2
    WHERE user_id = $3;`

	findUserByResetToken = `SELECT ` + userColumns + `
    FROM users
    WHERE reset_token_hash = $1 AND reset_token_expiry > NOW();`

	// Single atomic statement: the password change and the token clearing
	// happen together, and the WHERE clause re-validates the token so that
	// concurrent completions cannot both succeed.
	completePasswordReset = `UPDATE users
    SET password_hash = $1, reset_token_hash = NULL, reset_token_expiry = NULL
    WHERE reset_token_hash = $2 AND reset_token_expiry > NOW()
    RETURNING ` + userColumns + `;`

	listUsers = `SELECT user_id, name, email, role, created_at
    FROM users
    ORDER BY created_at;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`

	postColumns = `post_id, user_id, title, content, author, tags, created_at, updated_at`

	createPost = `INSERT INTO posts (user_id, title, content, author, tags)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + postColumns + `;`

	findPostByID = `SELECT ` + postColumns + `
    FROM posts
    WHERE post_id = $1;`

	findAllPosts = `SELECT ` + postColumns + `
    FROM posts
    ORDER BY created_at DESC;`

	findPostsByUser = `SELECT ` + postColumns + `
    FROM posts
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	deletePost = `DELETE FROM posts
    WHERE post_id = $1;`
)
