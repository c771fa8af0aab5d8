package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Section entries are always addressed through the owning profile so one
// user can never touch another user's rows.

const experienceColumns = `id, profile_id, title, company, location, start_date, end_date,
	is_current, description, sort_order, created_at`

func scanExperience(row pgx.Row) (*Experience, error) {
	var e Experience
	err := row.Scan(&e.ID, &e.ProfileID, &e.Title, &e.Company, &e.Location, &e.StartDate, &e.EndDate,
		&e.IsCurrent, &e.Description, &e.SortOrder, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListExperience returns a profile's roles by sort order.
func (db *DB) ListExperience(ctx context.Context, profileID uuid.UUID) ([]Experience, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+experienceColumns+` FROM experience WHERE profile_id = $1 ORDER BY sort_order, created_at`,
		profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience: %w", err)
	}
	defer rows.Close()

	out := []Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// AddExperience inserts a role. Nil fields take their column defaults.
func (db *DB) AddExperience(ctx context.Context, profileID uuid.UUID, in ExperienceInput) (*Experience, error) {
	e, err := scanExperience(db.pool.QueryRow(ctx,
		`INSERT INTO experience (profile_id, title, company, location, start_date, end_date,
		                         is_current, description, sort_order)
		 VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, ''),
		         COALESCE($6, ''), COALESCE($7, FALSE), COALESCE($8, ''), COALESCE($9, 0))
		 RETURNING `+experienceColumns,
		profileID, in.Title, in.Company, in.Location, in.StartDate, in.EndDate,
		in.IsCurrent, in.Description, in.SortOrder))
	if err != nil {
		return nil, fmt.Errorf("failed to add experience: %w", err)
	}
	return e, nil
}

// UpdateExperience applies a partial edit to a role on the profile.
func (db *DB) UpdateExperience(ctx context.Context, profileID, id uuid.UUID, in ExperienceInput) (*Experience, error) {
	e, err := scanExperience(db.pool.QueryRow(ctx,
		`UPDATE experience SET
		     title       = COALESCE($3, title),
		     company     = COALESCE($4, company),
		     location    = COALESCE($5, location),
		     start_date  = COALESCE($6, start_date),
		     end_date    = COALESCE($7, end_date),
		     is_current  = COALESCE($8, is_current),
		     description = COALESCE($9, description),
		     sort_order  = COALESCE($10, sort_order)
		 WHERE id = $1 AND profile_id = $2
		 RETURNING `+experienceColumns,
		id, profileID, in.Title, in.Company, in.Location, in.StartDate, in.EndDate,
		in.IsCurrent, in.Description, in.SortOrder))
	if err != nil {
		if noRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	return e, nil
}

// DeleteExperience removes a role from the profile.
func (db *DB) DeleteExperience(ctx context.Context, profileID, id uuid.UUID) error {
	return db.deleteSectionEntry(ctx, "experience", profileID, id)
}

const educationColumns = `id, profile_id, institution, degree, years, grade, sort_order, created_at`

func scanEducation(row pgx.Row) (*Education, error) {
	var e Education
	err := row.Scan(&e.ID, &e.ProfileID, &e.Institution, &e.Degree, &e.Years, &e.Grade, &e.SortOrder, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListEducation returns a profile's education entries by sort order.
func (db *DB) ListEducation(ctx context.Context, profileID uuid.UUID) ([]Education, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+educationColumns+` FROM education WHERE profile_id = $1 ORDER BY sort_order, created_at`,
		profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	out := []Education{}
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// AddEducation inserts an education entry.
func (db *DB) AddEducation(ctx context.Context, profileID uuid.UUID, in EducationInput) (*Education, error) {
	e, err := scanEducation(db.pool.QueryRow(ctx,
		`INSERT INTO education (profile_id, institution, degree, years, grade, sort_order)
		 VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, ''), COALESCE($6, 0))
		 RETURNING `+educationColumns,
		profileID, in.Institution, in.Degree, in.Years, in.Grade, in.SortOrder))
	if err != nil {
		return nil, fmt.Errorf("failed to add education: %w", err)
	}
	return e, nil
}

// UpdateEducation applies a partial edit to an education entry.
func (db *DB) UpdateEducation(ctx context.Context, profileID, id uuid.UUID, in EducationInput) (*Education, error) {
	e, err := scanEducation(db.pool.QueryRow(ctx,
		`UPDATE education SET
		     institution = COALESCE($3, institution),
		     degree      = COALESCE($4, degree),
		     years       = COALESCE($5, years),
		     grade       = COALESCE($6, grade),
		     sort_order  = COALESCE($7, sort_order)
		 WHERE id = $1 AND profile_id = $2
		 RETURNING `+educationColumns,
		id, profileID, in.Institution, in.Degree, in.Years, in.Grade, in.SortOrder))
	if err != nil {
		if noRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update education: %w", err)
	}
	return e, nil
}

// DeleteEducation removes an education entry.
func (db *DB) DeleteEducation(ctx context.Context, profileID, id uuid.UUID) error {
	return db.deleteSectionEntry(ctx, "education", profileID, id)
}

const certificationColumns = `id, profile_id, name, issuer, year, sort_order, created_at`

func scanCertification(row pgx.Row) (*Certification, error) {
	var c Certification
	err := row.Scan(&c.ID, &c.ProfileID, &c.Name, &c.Issuer, &c.Year, &c.SortOrder, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCertifications returns a profile's certifications by sort order.
func (db *DB) ListCertifications(ctx context.Context, profileID uuid.UUID) ([]Certification, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+certificationColumns+` FROM certifications WHERE profile_id = $1 ORDER BY sort_order, created_at`,
		profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}
	defer rows.Close()

	out := []Certification{}
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certification: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// AddCertification inserts a certification.
func (db *DB) AddCertification(ctx context.Context, profileID uuid.UUID, in CertificationInput) (*Certification, error) {
	c, err := scanCertification(db.pool.QueryRow(ctx,
		`INSERT INTO certifications (profile_id, name, issuer, year, sort_order)
		 VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, 0))
		 RETURNING `+certificationColumns,
		profileID, in.Name, in.Issuer, in.Year, in.SortOrder))
	if err != nil {
		return nil, fmt.Errorf("failed to add certification: %w", err)
	}
	return c, nil
}

// UpdateCertification applies a partial edit to a certification.
func (db *DB) UpdateCertification(ctx context.Context, profileID, id uuid.UUID, in CertificationInput) (*Certification, error) {
	c, err := scanCertification(db.pool.QueryRow(ctx,
		`UPDATE certifications SET
		     name       = COALESCE($3, name),
		     issuer     = COALESCE($4, issuer),
		     year       = COALESCE($5, year),
		     sort_order = COALESCE($6, sort_order)
		 WHERE id = $1 AND profile_id = $2
		 RETURNING `+certificationColumns,
		id, profileID, in.Name, in.Issuer, in.Year, in.SortOrder))
	if err != nil {
		if noRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update certification: %w", err)
	}
	return c, nil
}

// DeleteCertification removes a certification.
func (db *DB) DeleteCertification(ctx context.Context, profileID, id uuid.UUID) error {
	return db.deleteSectionEntry(ctx, "certifications", profileID, id)
}

// deleteSectionEntry is only called with the fixed table names above.
func (db *DB) deleteSectionEntry(ctx context.Context, table string, profileID, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM `+table+` WHERE id = $1 AND profile_id = $2`, id, profileID)
	return exactlyOne(tag, err, "delete "+table+" entry")
}
