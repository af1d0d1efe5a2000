package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/TylorMayfield/nh-jobsearch/internal/catalog"
)

const schemaVersion = 1

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= schemaVersion {
		return tx.Commit()
	}

	// ---- Schema v1 ----

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS jobs (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  company TEXT NOT NULL,
  location TEXT NOT NULL,
  industry TEXT NOT NULL,
  degree_level TEXT NOT NULL DEFAULT '',
  degree_type TEXT NOT NULL DEFAULT '',
  experience TEXT NOT NULL,
  credentials TEXT NOT NULL DEFAULT '[]',
  description TEXT NOT NULL DEFAULT ''
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d;`, schemaVersion)); err != nil {
		return err
	}

	return tx.Commit()
}

// SeedJobs inserts postings whose id is not stored yet and reports how many
// were added. Existing rows are left as they are.
func SeedJobs(ctx context.Context, db *sql.DB, jobs []catalog.Job) (added int, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT OR IGNORE INTO jobs (id, title, company, location, industry, degree_level, degree_type, experience, credentials, description)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, j := range jobs {
		creds := j.Credentials
		if creds == nil {
			creds = []catalog.Credential{}
		}
		credsJSON, err := json.Marshal(creds)
		if err != nil {
			return 0, fmt.Errorf("seed job %d: %w", j.ID, err)
		}

		res, err := stmt.ExecContext(ctx,
			j.ID, j.Title, j.Company, j.Location, string(j.Industry),
			string(j.DegreeLevel), string(j.DegreeType), string(j.Experience),
			string(credsJSON), j.Description,
		)
		if err != nil {
			return 0, fmt.Errorf("seed job %d: %w", j.ID, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// ListJobs returns every stored posting ordered by id, which is catalog order.
// Filtering never happens here; the matcher runs over the loaded catalog.
func ListJobs(ctx context.Context, db *sql.DB) ([]catalog.Job, error) {
	rows, err := db.QueryContext(ctx, `
SELECT id, title, company, location, industry, degree_level, degree_type, experience, credentials, description
FROM jobs
ORDER BY id ASC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Job
	for rows.Next() {
		var j catalog.Job
		var credsJSON string
		if err := rows.Scan(
			&j.ID,
			&j.Title,
			&j.Company,
			&j.Location,
			&j.Industry,
			&j.DegreeLevel,
			&j.DegreeType,
			&j.Experience,
			&credsJSON,
			&j.Description,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(credsJSON), &j.Credentials); err != nil {
			return nil, fmt.Errorf("job %d credentials: %w", j.ID, err)
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func CountJobs(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs;`).Scan(&n)
	return n, err
}

// LoadCatalog seeds the store with seed when it holds no postings yet, then
// reads every posting back into an immutable catalog.
func LoadCatalog(ctx context.Context, db *sql.DB, seed []catalog.Job) (*catalog.Catalog, int, error) {
	n, err := CountJobs(ctx, db)
	if err != nil {
		return nil, 0, err
	}

	added := 0
	if n == 0 && len(seed) > 0 {
		if added, err = SeedJobs(ctx, db, seed); err != nil {
			return nil, 0, err
		}
	}

	jobs, err := ListJobs(ctx, db)
	if err != nil {
		return nil, 0, err
	}
	cat, err := catalog.New(jobs)
	if err != nil {
		return nil, 0, fmt.Errorf("stored catalog: %w", err)
	}
	return cat, added, nil
}
