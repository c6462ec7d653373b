// AngelaMos | 2026
// repository.go

package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

// OrderUpdate assigns a new sort_order to one row. Reorder operations apply
// a batch of these inside a single transaction.
type OrderUpdate struct {
	ID        string
	SortOrder int
}

type Repository interface {
	GetProfile(ctx context.Context) (*Profile, error)
	UpsertProfile(ctx context.Context, profile *Profile) (*Profile, error)
	GetAdminTokenHash(ctx context.Context) (string, error)
	UpdateAdminTokenHash(ctx context.Context, hash string) error

	ListCaseStudies(ctx context.Context) ([]CaseStudy, error)
	GetCaseStudy(ctx context.Context, id string) (*CaseStudy, error)
	CreateCaseStudy(ctx context.Context, cs *CaseStudy) (*CaseStudy, error)
	UpdateCaseStudy(ctx context.Context, cs *CaseStudy) (*CaseStudy, error)
	DeleteCaseStudy(ctx context.Context, id string) error
	SetCaseStudyOrders(ctx context.Context, updates []OrderUpdate) error

	ListInsights(ctx context.Context) ([]Insight, error)
	GetInsight(ctx context.Context, id string) (*Insight, error)
	CreateInsight(ctx context.Context, in *Insight) (*Insight, error)
	UpdateInsight(ctx context.Context, in *Insight) (*Insight, error)
	DeleteInsight(ctx context.Context, id string) error

	ListFAQs(ctx context.Context) ([]FAQ, error)
	GetFAQ(ctx context.Context, id string) (*FAQ, error)
	CreateFAQ(ctx context.Context, f *FAQ) (*FAQ, error)
	UpdateFAQ(ctx context.Context, f *FAQ) (*FAQ, error)
	DeleteFAQ(ctx context.Context, id string) error
	SetFAQOrders(ctx context.Context, updates []OrderUpdate) error

	AddNewsletterSubscriber(ctx context.Context, email string) (bool, error)
	ListNewsletterSubscribers(ctx context.Context) ([]NewsletterSubscriber, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const profileColumns = `
	id, name, title, tagline, email, phone, location,
	profile_image, linkedin, twitter,
	stats_years_of_experience, stats_total_funding_secured,
	stats_countries, stats_winning_rate,
	bio_short, bio_full, mission, mission_supporting,
	philosophy, sectors, regions, approach,
	cta_heading, cta_body, cta_button_label, cta_button_href,
	admin_token_hash, created_at, updated_at`

func (r *repository) GetProfile(ctx context.Context) (*Profile, error) {
	query := `SELECT` + profileColumns + `
		FROM profiles
		WHERE id = $1`

	var profile Profile
	err := r.db.GetContext(ctx, &profile, query, ProfileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &profile, nil
}

// UpsertProfile replaces every content column of the singleton row. The
// admin_token_hash column is owned by the auth flow and never touched here.
func (r *repository) UpsertProfile(
	ctx context.Context,
	profile *Profile,
) (*Profile, error) {
	query := `
		INSERT INTO profiles (
			id, name, title, tagline, email, phone, location,
			profile_image, linkedin, twitter,
			stats_years_of_experience, stats_total_funding_secured,
			stats_countries, stats_winning_rate,
			bio_short, bio_full, mission, mission_supporting,
			philosophy, sectors, regions, approach,
			cta_heading, cta_body, cta_button_label, cta_button_href
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10,
			$11, $12, $13, $14,
			$15, $16, $17, $18,
			$19, $20, $21, $22,
			$23, $24, $25, $26
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			tagline = EXCLUDED.tagline,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			profile_image = EXCLUDED.profile_image,
			linkedin = EXCLUDED.linkedin,
			twitter = EXCLUDED.twitter,
			stats_years_of_experience = EXCLUDED.stats_years_of_experience,
			stats_total_funding_secured = EXCLUDED.stats_total_funding_secured,
			stats_countries = EXCLUDED.stats_countries,
			stats_winning_rate = EXCLUDED.stats_winning_rate,
			bio_short = EXCLUDED.bio_short,
			bio_full = EXCLUDED.bio_full,
			mission = EXCLUDED.mission,
			mission_supporting = EXCLUDED.mission_supporting,
			philosophy = EXCLUDED.philosophy,
			sectors = EXCLUDED.sectors,
			regions = EXCLUDED.regions,
			approach = EXCLUDED.approach,
			cta_heading = EXCLUDED.cta_heading,
			cta_body = EXCLUDED.cta_body,
			cta_button_label = EXCLUDED.cta_button_label,
			cta_button_href = EXCLUDED.cta_button_href,
			updated_at = NOW()
		RETURNING` + profileColumns

	var saved Profile
	err := r.db.GetContext(ctx, &saved, query,
		ProfileID, profile.Name, profile.Title, profile.Tagline,
		profile.Email, profile.Phone, profile.Location,
		profile.ProfileImage, profile.Linkedin, profile.Twitter,
		profile.StatsYearsOfExperience, profile.StatsTotalFundingSecured,
		profile.StatsCountries, profile.StatsWinningRate,
		profile.BioShort, profile.BioFull,
		profile.Mission, profile.MissionSupporting,
		profile.Philosophy, profile.Sectors, profile.Regions,
		profile.Approach,
		profile.CTAHeading, profile.CTABody,
		profile.CTAButtonLabel, profile.CTAButtonHref,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	return &saved, nil
}

func (r *repository) GetAdminTokenHash(ctx context.Context) (string, error) {
	query := `SELECT admin_token_hash FROM profiles WHERE id = $1`

	var hash sql.NullString
	err := r.db.GetContext(ctx, &hash, query, ProfileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get admin token hash: %w", err)
	}

	return hash.String, nil
}

// UpdateAdminTokenHash writes the credential even when no profile content
// has been saved yet, creating a placeholder row on first use.
func (r *repository) UpdateAdminTokenHash(
	ctx context.Context,
	hash string,
) error {
	query := `
		INSERT INTO profiles (id, name, title, tagline, email, admin_token_hash)
		VALUES ($1, 'Admin', '', '', 'admin@localhost', $2)
		ON CONFLICT (id) DO UPDATE SET
			admin_token_hash = EXCLUDED.admin_token_hash,
			updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, ProfileID, hash); err != nil {
		return fmt.Errorf("update admin token hash: %w", err)
	}

	return nil
}

const caseStudyColumns = `
	id, title, client, sector, contract_value, country, description,
	key_achievements, image, featured, sort_order, created_at, updated_at`

func (r *repository) ListCaseStudies(ctx context.Context) ([]CaseStudy, error) {
	query := `SELECT` + caseStudyColumns + `
		FROM case_studies
		ORDER BY sort_order ASC NULLS LAST, featured DESC, created_at DESC`

	items := []CaseStudy{}
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list case studies: %w", err)
	}

	return items, nil
}

func (r *repository) GetCaseStudy(
	ctx context.Context,
	id string,
) (*CaseStudy, error) {
	query := `SELECT` + caseStudyColumns + `
		FROM case_studies
		WHERE id = $1`

	var cs CaseStudy
	err := r.db.GetContext(ctx, &cs, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("get case study: %w", err)
	}

	return &cs, nil
}

func (r *repository) CreateCaseStudy(
	ctx context.Context,
	cs *CaseStudy,
) (*CaseStudy, error) {
	query := `
		INSERT INTO case_studies (
			id, title, client, sector, contract_value, country,
			description, key_achievements, image, featured, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING` + caseStudyColumns

	var saved CaseStudy
	err := r.db.GetContext(ctx, &saved, query,
		cs.ID, cs.Title, cs.Client, cs.Sector, cs.ContractValue,
		cs.Country, cs.Description, cs.KeyAchievements, cs.Image,
		cs.Featured, cs.SortOrder,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, core.ErrDuplicateKey
		}
		return nil, fmt.Errorf("create case study: %w", err)
	}

	return &saved, nil
}

func (r *repository) UpdateCaseStudy(
	ctx context.Context,
	cs *CaseStudy,
) (*CaseStudy, error) {
	query := `
		UPDATE case_studies SET
			title = $2,
			client = $3,
			sector = $4,
			contract_value = $5,
			country = $6,
			description = $7,
			key_achievements = $8,
			image = $9,
			featured = $10,
			sort_order = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING` + caseStudyColumns

	var saved CaseStudy
	err := r.db.GetContext(ctx, &saved, query,
		cs.ID, cs.Title, cs.Client, cs.Sector, cs.ContractValue,
		cs.Country, cs.Description, cs.KeyAchievements, cs.Image,
		cs.Featured, cs.SortOrder,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("update case study: %w", err)
	}

	return &saved, nil
}

func (r *repository) DeleteCaseStudy(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "case_studies", "delete case study", id)
}

func (r *repository) SetCaseStudyOrders(
	ctx context.Context,
	updates []OrderUpdate,
) error {
	return r.setOrders(ctx, "case_studies", "set case study orders", updates)
}

const insightColumns = `
	id, title, excerpt, content, category, date, read_time, featured,
	created_at, updated_at`

func (r *repository) ListInsights(ctx context.Context) ([]Insight, error) {
	query := `SELECT` + insightColumns + `
		FROM insights
		ORDER BY featured DESC, date DESC`

	items := []Insight{}
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}

	return items, nil
}

func (r *repository) GetInsight(
	ctx context.Context,
	id string,
) (*Insight, error) {
	query := `SELECT` + insightColumns + `
		FROM insights
		WHERE id = $1`

	var in Insight
	err := r.db.GetContext(ctx, &in, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("get insight: %w", err)
	}

	return &in, nil
}

func (r *repository) CreateInsight(
	ctx context.Context,
	in *Insight,
) (*Insight, error) {
	query := `
		INSERT INTO insights (
			id, title, excerpt, content, category, date, read_time, featured
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING` + insightColumns

	var saved Insight
	err := r.db.GetContext(ctx, &saved, query,
		in.ID, in.Title, in.Excerpt, in.Content,
		in.Category, in.Date, in.ReadTime, in.Featured,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, core.ErrDuplicateKey
		}
		return nil, fmt.Errorf("create insight: %w", err)
	}

	return &saved, nil
}

func (r *repository) UpdateInsight(
	ctx context.Context,
	in *Insight,
) (*Insight, error) {
	query := `
		UPDATE insights SET
			title = $2,
			excerpt = $3,
			content = $4,
			category = $5,
			date = $6,
			read_time = $7,
			featured = $8,
			updated_at = NOW()
		WHERE id = $1
		RETURNING` + insightColumns

	var saved Insight
	err := r.db.GetContext(ctx, &saved, query,
		in.ID, in.Title, in.Excerpt, in.Content,
		in.Category, in.Date, in.ReadTime, in.Featured,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("update insight: %w", err)
	}

	return &saved, nil
}

func (r *repository) DeleteInsight(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "insights", "delete insight", id)
}

const faqColumns = `
	id, question, answer, sort_order, created_at, updated_at`

func (r *repository) ListFAQs(ctx context.Context) ([]FAQ, error) {
	query := `SELECT` + faqColumns + `
		FROM faqs
		ORDER BY sort_order ASC NULLS LAST, created_at ASC`

	items := []FAQ{}
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}

	return items, nil
}

func (r *repository) GetFAQ(ctx context.Context, id string) (*FAQ, error) {
	query := `SELECT` + faqColumns + `
		FROM faqs
		WHERE id = $1`

	var f FAQ
	err := r.db.GetContext(ctx, &f, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("get faq: %w", err)
	}

	return &f, nil
}

func (r *repository) CreateFAQ(ctx context.Context, f *FAQ) (*FAQ, error) {
	query := `
		INSERT INTO faqs (id, question, answer, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING` + faqColumns

	var saved FAQ
	err := r.db.GetContext(ctx, &saved, query,
		f.ID, f.Question, f.Answer, f.SortOrder,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, core.ErrDuplicateKey
		}
		return nil, fmt.Errorf("create faq: %w", err)
	}

	return &saved, nil
}

func (r *repository) UpdateFAQ(ctx context.Context, f *FAQ) (*FAQ, error) {
	query := `
		UPDATE faqs SET
			question = $2,
			answer = $3,
			sort_order = $4,
			updated_at = NOW()
		WHERE id = $1
		RETURNING` + faqColumns

	var saved FAQ
	err := r.db.GetContext(ctx, &saved, query,
		f.ID, f.Question, f.Answer, f.SortOrder,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("update faq: %w", err)
	}

	return &saved, nil
}

func (r *repository) DeleteFAQ(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "faqs", "delete faq", id)
}

func (r *repository) SetFAQOrders(
	ctx context.Context,
	updates []OrderUpdate,
) error {
	return r.setOrders(ctx, "faqs", "set faq orders", updates)
}

// AddNewsletterSubscriber reports whether the email was newly added.
// An existing subscription is not an error.
func (r *repository) AddNewsletterSubscriber(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `
		INSERT INTO newsletter_subscribers (email)
		VALUES ($1)`

	if _, err := r.db.ExecContext(ctx, query, email); err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("add newsletter subscriber: %w", err)
	}

	return true, nil
}

func (r *repository) ListNewsletterSubscribers(
	ctx context.Context,
) ([]NewsletterSubscriber, error) {
	query := `
		SELECT email, created_at
		FROM newsletter_subscribers
		ORDER BY created_at ASC`

	items := []NewsletterSubscriber{}
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list newsletter subscribers: %w", err)
	}

	return items, nil
}

func (r *repository) deleteByID(
	ctx context.Context,
	table string,
	op string,
	id string,
) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rows == 0 {
		return core.ErrNotFound
	}

	return nil
}

// setOrders applies the batch atomically; a reorder must never leave one row
// moved and its neighbor untouched.
func (r *repository) setOrders(
	ctx context.Context,
	table string,
	op string,
	updates []OrderUpdate,
) error {
	if len(updates) == 0 {
		return nil
	}

	query := fmt.Sprintf(
		`UPDATE %s SET sort_order = $2, updated_at = NOW() WHERE id = $1`,
		table,
	)

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for _, u := range updates {
			result, err := tx.ExecContext(ctx, query, u.ID, u.SortOrder)
			if err != nil {
				return err
			}

			rows, err := result.RowsAffected()
			if err != nil {
				return err
			}
			if rows == 0 {
				return core.ErrNotFound
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.ErrNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// isUniqueViolation is the only place driver error codes are inspected.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
