package store

const (
	createUser = `INSERT INTO users (user_id, name, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	findAllMemberships = `SELECT kind, video_id
    FROM user_video_memberships
    WHERE user_id = $1
    ORDER BY membership_id;`

	// getMembership keeps the users row on the left so that an empty set and
	// a missing user can be told apart: the latter yields no rows at all.
	getMembership = `SELECT u.user_id, m.video_id
    FROM users u
    LEFT JOIN user_video_memberships m
        ON m.user_id = u.user_id AND m.kind = $2
    WHERE u.user_id = $1
    ORDER BY m.membership_id;`

	lockUser = `SELECT user_id
    FROM users
    WHERE user_id = $1
    FOR UPDATE;`

	selectMembershipForUpdate = `SELECT video_id
    FROM user_video_memberships
    WHERE user_id = $1 AND kind = $2
    ORDER BY membership_id;`

	insertMembership = `INSERT INTO user_video_memberships (user_id, kind, video_id)
    VALUES ($1, $2, $3);`

	deleteMembership = `DELETE FROM user_video_memberships
    WHERE user_id = $1 AND kind = $2 AND video_id = $3;`

	createVideo = `INSERT INTO videos (video_id, file_name, storage_key, title, category, description)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING created_at;`

	createComment = `INSERT INTO comments (comment_id, video_id, user_id, text)
    VALUES ($1, $2, $3, $4)
    RETURNING created_at;`

	listCommentsByVideo = `SELECT c.comment_id, c.video_id, c.user_id, COALESCE(u.name, ''), c.text, c.created_at
    FROM comments c
    LEFT JOIN users u ON u.user_id = c.user_id
    WHERE c.video_id = $1
    ORDER BY c.created_at, c.comment_id;`

	// deleteOwnedComment checks ownership and deletes in one statement.
	// It returns the owner of the addressed comment (NULL if it does not
	// exist) and the id of the deleted row (NULL if nothing was deleted).
	deleteOwnedComment = `WITH target AS (
        SELECT comment_id, user_id FROM comments WHERE comment_id = $1
    ), deleted AS (
        DELETE FROM comments c
        USING target t
        WHERE c.comment_id = t.comment_id AND t.user_id = $2
        RETURNING c.comment_id
    )
    SELECT (SELECT user_id FROM target), (SELECT comment_id FROM deleted);`
)

// video listing columns, used with squirrel.
var videoColumns = []string{
	"video_id",
	"file_name",
	"storage_key",
	"title",
	"category",
	"description",
	"created_at",
}
