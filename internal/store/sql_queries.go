package store

const (
	createUser = `INSERT INTO users (email, hashed_password, nickname)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, hashed_password, nickname, created_at;`

	findUserByID = `SELECT user_id, email, hashed_password, nickname, created_at
    FROM users
    WHERE user_id = $1;`

	findUserByEmail = `SELECT user_id, email, hashed_password, nickname, created_at
    FROM users
    WHERE email = $1;`

	countUsersByEmail = `SELECT count(*) FROM users WHERE email = $1;`
)
