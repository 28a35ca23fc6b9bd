package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Queries holds the SQL used by the repositories.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

// InTx runs fn inside a transaction, committing when fn returns nil.
func (q *Queries) InTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := q.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	if err := fn(q.WithTx(tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type scheduleRow struct {
	ID               string
	CourseID         string
	CourseCode       string
	CourseName       string
	InstructorName   string
	RoomID           string
	RoomName         string
	Day              string
	StartTime        pgtype.Time
	EndTime          pgtype.Time
	HasConflict      bool
	ConflictCategory string
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

const scheduleColumns = `id, course_id, course_code, course_name, instructor_name,
	room_id, room_name, day, start_time, end_time, has_conflict, conflict_category,
	created_at, updated_at`

func scanSchedule(row pgx.Row) (scheduleRow, error) {
	var s scheduleRow
	err := row.Scan(
		&s.ID, &s.CourseID, &s.CourseCode, &s.CourseName, &s.InstructorName,
		&s.RoomID, &s.RoomName, &s.Day, &s.StartTime, &s.EndTime,
		&s.HasConflict, &s.ConflictCategory, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

const listSchedules = `SELECT ` + scheduleColumns + ` FROM schedules
ORDER BY array_position(ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday','Saturday'], day), start_time, id`

func (q *Queries) ListSchedules(ctx context.Context) ([]scheduleRow, error) {
	rows, err := q.db.Query(ctx, listSchedules)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []scheduleRow
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

const getSchedule = `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`

func (q *Queries) GetSchedule(ctx context.Context, id string) (scheduleRow, error) {
	return scanSchedule(q.db.QueryRow(ctx, getSchedule, id))
}

const insertSchedule = `INSERT INTO schedules (` + scheduleColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

func (q *Queries) InsertSchedule(ctx context.Context, s scheduleRow) error {
	_, err := q.db.Exec(ctx, insertSchedule,
		s.ID, s.CourseID, s.CourseCode, s.CourseName, s.InstructorName,
		s.RoomID, s.RoomName, s.Day, s.StartTime, s.EndTime,
		s.HasConflict, s.ConflictCategory, s.CreatedAt, s.UpdatedAt,
	)
	return err
}

const updateSchedule = `UPDATE schedules SET
	course_id = $2, course_code = $3, course_name = $4, instructor_name = $5,
	room_id = $6, room_name = $7, day = $8, start_time = $9, end_time = $10,
	has_conflict = $11, conflict_category = $12, updated_at = $13
WHERE id = $1`

func (q *Queries) UpdateSchedule(ctx context.Context, s scheduleRow) (int64, error) {
	tag, err := q.db.Exec(ctx, updateSchedule,
		s.ID, s.CourseID, s.CourseCode, s.CourseName, s.InstructorName,
		s.RoomID, s.RoomName, s.Day, s.StartTime, s.EndTime,
		s.HasConflict, s.ConflictCategory, s.UpdatedAt,
	)
	return tag.RowsAffected(), err
}

const updateScheduleConflict = `UPDATE schedules SET has_conflict = $2, conflict_category = $3 WHERE id = $1`

func (q *Queries) UpdateScheduleConflict(ctx context.Context, id string, hasConflict bool, category string) error {
	_, err := q.db.Exec(ctx, updateScheduleConflict, id, hasConflict, category)
	return err
}

func (q *Queries) DeleteSchedule(ctx context.Context, id string) (int64, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	return tag.RowsAffected(), err
}

func (q *Queries) DeleteAllSchedules(ctx context.Context) error {
	_, err := q.db.Exec(ctx, `DELETE FROM schedules`)
	return err
}

type courseRow struct {
	ID             string
	Code           string
	Name           string
	Credits        int32
	InstructorName string
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

const courseColumns = `id, code, name, credits, instructor_name, created_at, updated_at`

func scanCourse(row pgx.Row) (courseRow, error) {
	var c courseRow
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.Credits, &c.InstructorName, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (q *Queries) ListCourses(ctx context.Context) ([]courseRow, error) {
	rows, err := q.db.Query(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []courseRow
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (q *Queries) GetCourse(ctx context.Context, id string) (courseRow, error) {
	return scanCourse(q.db.QueryRow(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id))
}

func (q *Queries) GetCourseByCode(ctx context.Context, code string) (courseRow, error) {
	return scanCourse(q.db.QueryRow(ctx, `SELECT `+courseColumns+` FROM courses WHERE upper(code) = upper($1)`, code))
}

func (q *Queries) InsertCourse(ctx context.Context, c courseRow) error {
	_, err := q.db.Exec(ctx, `INSERT INTO courses (`+courseColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Code, c.Name, c.Credits, c.InstructorName, c.CreatedAt, c.UpdatedAt)
	return err
}

func (q *Queries) UpdateCourse(ctx context.Context, c courseRow) (int64, error) {
	tag, err := q.db.Exec(ctx, `UPDATE courses SET code = $2, name = $3, credits = $4, instructor_name = $5, updated_at = $6 WHERE id = $1`,
		c.ID, c.Code, c.Name, c.Credits, c.InstructorName, c.UpdatedAt)
	return tag.RowsAffected(), err
}

func (q *Queries) DeleteCourse(ctx context.Context, id string) (int64, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return tag.RowsAffected(), err
}

type roomRow struct {
	ID        string
	Name      string
	Building  string
	Capacity  int32
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

const roomColumns = `id, name, building, capacity, created_at, updated_at`

func scanRoom(row pgx.Row) (roomRow, error) {
	var r roomRow
	err := row.Scan(&r.ID, &r.Name, &r.Building, &r.Capacity, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (q *Queries) ListRooms(ctx context.Context) ([]roomRow, error) {
	rows, err := q.db.Query(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY building, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []roomRow
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (q *Queries) GetRoom(ctx context.Context, id string) (roomRow, error) {
	return scanRoom(q.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id))
}

func (q *Queries) InsertRoom(ctx context.Context, r roomRow) error {
	_, err := q.db.Exec(ctx, `INSERT INTO rooms (`+roomColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, r.Name, r.Building, r.Capacity, r.CreatedAt, r.UpdatedAt)
	return err
}

func (q *Queries) UpdateRoom(ctx context.Context, r roomRow) (int64, error) {
	tag, err := q.db.Exec(ctx, `UPDATE rooms SET name = $2, building = $3, capacity = $4, updated_at = $5 WHERE id = $1`,
		r.ID, r.Name, r.Building, r.Capacity, r.UpdatedAt)
	return tag.RowsAffected(), err
}

func (q *Queries) DeleteRoom(ctx context.Context, id string) (int64, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	return tag.RowsAffected(), err
}

type userRow struct {
	ID           string
	Email        string
	Name         string
	Role         string
	PasswordHash string
	CreatedAt    pgtype.Timestamptz
}

const userColumns = `id, email, name, role, password_hash, created_at`

func scanUser(row pgx.Row) (userRow, error) {
	var u userRow
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

func (q *Queries) InsertUser(ctx context.Context, u userRow) error {
	_, err := q.db.Exec(ctx, `INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Email, u.Name, u.Role, u.PasswordHash, u.CreatedAt)
	return err
}

func (q *Queries) GetUser(ctx context.Context, id string) (userRow, error) {
	return scanUser(q.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (userRow, error) {
	return scanUser(q.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
}
