// AngelaMos | 2026
// entity.go

package content

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ProfileID is the fixed primary key of the singleton profile row. Exactly
// one row ever exists; it is created on first write and never deleted.
const ProfileID = "profile"

// StringSlice maps a []string onto a jsonb column.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	return json.Marshal(s)
}

func (s *StringSlice) Scan(src any) error {
	return scanJSON(src, s)
}

type ApproachStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Focus       string `json:"focus,omitempty"`
}

// ApproachSteps maps the profile's approach list onto a jsonb column.
type ApproachSteps []ApproachStep

func (a ApproachSteps) Value() (driver.Value, error) {
	if a == nil {
		a = ApproachSteps{}
	}
	return json.Marshal(a)
}

func (a *ApproachSteps) Scan(src any) error {
	return scanJSON(src, a)
}

func scanJSON(src, dest any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("cannot scan %T into jsonb value", src)
	}
}

type Profile struct {
	ID                       string        `db:"id"`
	Name                     string        `db:"name"`
	Title                    string        `db:"title"`
	Tagline                  string        `db:"tagline"`
	Email                    string        `db:"email"`
	Phone                    string        `db:"phone"`
	Location                 string        `db:"location"`
	ProfileImage             *string       `db:"profile_image"`
	Linkedin                 *string       `db:"linkedin"`
	Twitter                  *string       `db:"twitter"`
	StatsYearsOfExperience   string        `db:"stats_years_of_experience"`
	StatsTotalFundingSecured string        `db:"stats_total_funding_secured"`
	StatsCountries           string        `db:"stats_countries"`
	StatsWinningRate         string        `db:"stats_winning_rate"`
	BioShort                 string        `db:"bio_short"`
	BioFull                  string        `db:"bio_full"`
	Mission                  string        `db:"mission"`
	MissionSupporting        *string       `db:"mission_supporting"`
	Philosophy               StringSlice   `db:"philosophy"`
	Sectors                  StringSlice   `db:"sectors"`
	Regions                  StringSlice   `db:"regions"`
	Approach                 ApproachSteps `db:"approach"`
	CTAHeading               *string       `db:"cta_heading"`
	CTABody                  *string       `db:"cta_body"`
	CTAButtonLabel           *string       `db:"cta_button_label"`
	CTAButtonHref            *string       `db:"cta_button_href"`
	AdminTokenHash           *string       `db:"admin_token_hash"`
	CreatedAt                time.Time     `db:"created_at"`
	UpdatedAt                time.Time     `db:"updated_at"`
}

type CaseStudy struct {
	ID              string      `db:"id"`
	Title           string      `db:"title"`
	Client          string      `db:"client"`
	Sector          string      `db:"sector"`
	ContractValue   string      `db:"contract_value"`
	Country         string      `db:"country"`
	Description     string      `db:"description"`
	KeyAchievements StringSlice `db:"key_achievements"`
	Image           string      `db:"image"`
	Featured        bool        `db:"featured"`
	SortOrder       *int        `db:"sort_order"`
	CreatedAt       time.Time   `db:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at"`
}

type Insight struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Excerpt   string    `db:"excerpt"`
	Content   string    `db:"content"`
	Category  string    `db:"category"`
	Date      string    `db:"date"`
	ReadTime  string    `db:"read_time"`
	Featured  bool      `db:"featured"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type FAQ struct {
	ID        string    `db:"id"`
	Question  string    `db:"question"`
	Answer    string    `db:"answer"`
	SortOrder *int      `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type NewsletterSubscriber struct {
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}
