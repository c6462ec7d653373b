// AngelaMos | 2026
// dto.go

package content

import (
	"time"
)

// API field names are camelCase to stay wire-compatible with the admin UI
// the original deployments ship.

type ProfileStats struct {
	YearsOfExperience   string `json:"yearsOfExperience"`
	TotalFundingSecured string `json:"totalFundingSecured"`
	Countries           string `json:"countries"`
	WinningRate         string `json:"winningRate"`
}

type ProfileBio struct {
	Short string `json:"short"`
	Full  string `json:"full"`
}

type ProfileCTA struct {
	Heading     string `json:"heading"`
	Body        string `json:"body"`
	ButtonLabel string `json:"buttonLabel"`
	ButtonHref  string `json:"buttonHref"`
}

const (
	defaultCTAHeading = "Let's Work Together"
	defaultCTABody    = "Whether you're looking to improve your proposal " +
		"process or build a winning team, I'm here to help."
	defaultCTAButtonLabel = "Get in Touch"
	defaultCTAButtonHref  = "/contact"
)

// ProfilePayload is the full profile schema accepted by PUT. The storage row
// is flat; the API shape nests stats, bio and cta.
type ProfilePayload struct {
	Name              string         `json:"name"`
	Title             string         `json:"title"`
	Tagline           string         `json:"tagline"`
	Email             string         `json:"email"              validate:"required,email"`
	Phone             string         `json:"phone"`
	Location          string         `json:"location"`
	ProfileImage      *string        `json:"profileImage,omitempty"      validate:"omitempty,url"`
	Linkedin          *string        `json:"linkedin,omitempty"          validate:"omitempty,url"`
	Twitter           *string        `json:"twitter,omitempty"           validate:"omitempty,url"`
	Stats             ProfileStats   `json:"stats"`
	Bio               ProfileBio     `json:"bio"`
	Mission           string         `json:"mission"`
	MissionSupporting *string        `json:"missionSupporting,omitempty"`
	Philosophy        []string       `json:"philosophy"`
	Sectors           []string       `json:"sectors"`
	Regions           []string       `json:"regions"`
	Approach          []ApproachStep `json:"approach"`
	CTA               *ProfileCTA    `json:"cta,omitempty"`
}

type ProfileResponse struct {
	Name              string         `json:"name"`
	Title             string         `json:"title"`
	Tagline           string         `json:"tagline"`
	Email             string         `json:"email"`
	Phone             string         `json:"phone"`
	Location          string         `json:"location"`
	ProfileImage      *string        `json:"profileImage,omitempty"`
	Linkedin          *string        `json:"linkedin,omitempty"`
	Twitter           *string        `json:"twitter,omitempty"`
	Stats             ProfileStats   `json:"stats"`
	Bio               ProfileBio     `json:"bio"`
	Mission           string         `json:"mission"`
	MissionSupporting *string        `json:"missionSupporting,omitempty"`
	Philosophy        []string       `json:"philosophy"`
	Sectors           []string       `json:"sectors"`
	Regions           []string       `json:"regions"`
	Approach          []ApproachStep `json:"approach"`
	CTA               *ProfileCTA    `json:"cta,omitempty"`
}

func toProfileResponse(p *Profile) *ProfileResponse {
	return &ProfileResponse{
		Name:         p.Name,
		Title:        p.Title,
		Tagline:      p.Tagline,
		Email:        p.Email,
		Phone:        p.Phone,
		Location:     p.Location,
		ProfileImage: p.ProfileImage,
		Linkedin:     p.Linkedin,
		Twitter:      p.Twitter,
		Stats: ProfileStats{
			YearsOfExperience:   p.StatsYearsOfExperience,
			TotalFundingSecured: p.StatsTotalFundingSecured,
			Countries:           p.StatsCountries,
			WinningRate:         p.StatsWinningRate,
		},
		Bio: ProfileBio{
			Short: p.BioShort,
			Full:  p.BioFull,
		},
		Mission:           p.Mission,
		MissionSupporting: p.MissionSupporting,
		Philosophy:        p.Philosophy,
		Sectors:           p.Sectors,
		Regions:           p.Regions,
		Approach:          p.Approach,
		CTA:               buildCTA(p),
	}
}

// buildCTA omits the block entirely when no CTA column is set, and fills
// sensible defaults for partially configured rows.
func buildCTA(p *Profile) *ProfileCTA {
	if p.CTAHeading == nil && p.CTABody == nil &&
		p.CTAButtonLabel == nil && p.CTAButtonHref == nil {
		return nil
	}

	cta := &ProfileCTA{
		Heading:     defaultCTAHeading,
		Body:        defaultCTABody,
		ButtonLabel: defaultCTAButtonLabel,
		ButtonHref:  defaultCTAButtonHref,
	}

	if p.CTAHeading != nil {
		cta.Heading = *p.CTAHeading
	}
	if p.CTABody != nil {
		cta.Body = *p.CTABody
	}
	if p.CTAButtonLabel != nil && *p.CTAButtonLabel != "" {
		cta.ButtonLabel = *p.CTAButtonLabel
	}
	if p.CTAButtonHref != nil && *p.CTAButtonHref != "" {
		cta.ButtonHref = *p.CTAButtonHref
	}

	return cta
}

func (p *ProfilePayload) toEntity() *Profile {
	entity := &Profile{
		ID:                       ProfileID,
		Name:                     p.Name,
		Title:                    p.Title,
		Tagline:                  p.Tagline,
		Email:                    p.Email,
		Phone:                    p.Phone,
		Location:                 p.Location,
		ProfileImage:             p.ProfileImage,
		Linkedin:                 p.Linkedin,
		Twitter:                  p.Twitter,
		StatsYearsOfExperience:   p.Stats.YearsOfExperience,
		StatsTotalFundingSecured: p.Stats.TotalFundingSecured,
		StatsCountries:           p.Stats.Countries,
		StatsWinningRate:         p.Stats.WinningRate,
		BioShort:                 p.Bio.Short,
		BioFull:                  p.Bio.Full,
		Mission:                  p.Mission,
		MissionSupporting:        p.MissionSupporting,
		Philosophy:               p.Philosophy,
		Sectors:                  p.Sectors,
		Regions:                  p.Regions,
		Approach:                 p.Approach,
	}

	if p.CTA != nil {
		entity.CTAHeading = &p.CTA.Heading
		entity.CTABody = &p.CTA.Body
		entity.CTAButtonLabel = &p.CTA.ButtonLabel
		entity.CTAButtonHref = &p.CTA.ButtonHref
	}

	return entity
}

type CaseStudyPayload struct {
	ID              string   `json:"id,omitempty"     validate:"omitempty,min=1"`
	Title           string   `json:"title"            validate:"required"`
	Client          string   `json:"client"           validate:"required"`
	Sector          string   `json:"sector"           validate:"required"`
	ContractValue   string   `json:"contractValue"    validate:"required"`
	Country         string   `json:"country"          validate:"required"`
	Description     string   `json:"description"      validate:"required"`
	KeyAchievements []string `json:"keyAchievements"`
	Image           string   `json:"image"            validate:"omitempty,url"`
	Featured        bool     `json:"featured"`
	Order           *int     `json:"order"`
}

type UpdateCaseStudyRequest struct {
	Title           *string   `json:"title,omitempty"           validate:"omitempty,min=1"`
	Client          *string   `json:"client,omitempty"          validate:"omitempty,min=1"`
	Sector          *string   `json:"sector,omitempty"          validate:"omitempty,min=1"`
	ContractValue   *string   `json:"contractValue,omitempty"   validate:"omitempty,min=1"`
	Country         *string   `json:"country,omitempty"         validate:"omitempty,min=1"`
	Description     *string   `json:"description,omitempty"     validate:"omitempty,min=1"`
	KeyAchievements *[]string `json:"keyAchievements,omitempty"`
	Image           *string   `json:"image,omitempty"           validate:"omitempty,url"`
	Featured        *bool     `json:"featured,omitempty"`
	Order           *int      `json:"order,omitempty"`
}

type CaseStudyResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Client          string    `json:"client"`
	Sector          string    `json:"sector"`
	ContractValue   string    `json:"contractValue"`
	Country         string    `json:"country"`
	Description     string    `json:"description"`
	KeyAchievements []string  `json:"keyAchievements"`
	Image           string    `json:"image"`
	Featured        bool      `json:"featured"`
	Order           *int      `json:"order"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toCaseStudyResponse(cs *CaseStudy) CaseStudyResponse {
	return CaseStudyResponse{
		ID:              cs.ID,
		Title:           cs.Title,
		Client:          cs.Client,
		Sector:          cs.Sector,
		ContractValue:   cs.ContractValue,
		Country:         cs.Country,
		Description:     cs.Description,
		KeyAchievements: cs.KeyAchievements,
		Image:           cs.Image,
		Featured:        cs.Featured,
		Order:           cs.SortOrder,
		CreatedAt:       cs.CreatedAt,
		UpdatedAt:       cs.UpdatedAt,
	}
}

func toCaseStudyResponseList(items []CaseStudy) []CaseStudyResponse {
	responses := make([]CaseStudyResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toCaseStudyResponse(&items[i]))
	}
	return responses
}

type InsightPayload struct {
	ID       string `json:"id,omitempty" validate:"omitempty,min=1"`
	Title    string `json:"title"        validate:"required"`
	Excerpt  string `json:"excerpt"      validate:"required"`
	Content  string `json:"content"      validate:"required"`
	Category string `json:"category"     validate:"required"`
	Date     string `json:"date"         validate:"required"`
	ReadTime string `json:"readTime"     validate:"required"`
	Featured bool   `json:"featured"`
}

type UpdateInsightRequest struct {
	Title    *string `json:"title,omitempty"    validate:"omitempty,min=1"`
	Excerpt  *string `json:"excerpt,omitempty"  validate:"omitempty,min=1"`
	Content  *string `json:"content,omitempty"  validate:"omitempty,min=1"`
	Category *string `json:"category,omitempty" validate:"omitempty,min=1"`
	Date     *string `json:"date,omitempty"     validate:"omitempty,min=1"`
	ReadTime *string `json:"readTime,omitempty" validate:"omitempty,min=1"`
	Featured *bool   `json:"featured,omitempty"`
}

type InsightResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	ReadTime  string    `json:"readTime"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toInsightResponse(in *Insight) InsightResponse {
	return InsightResponse{
		ID:        in.ID,
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Category:  in.Category,
		Date:      in.Date,
		ReadTime:  in.ReadTime,
		Featured:  in.Featured,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

func toInsightResponseList(items []Insight) []InsightResponse {
	responses := make([]InsightResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toInsightResponse(&items[i]))
	}
	return responses
}

type FAQPayload struct {
	ID       string `json:"id,omitempty" validate:"omitempty,min=1"`
	Question string `json:"question"     validate:"required,min=1"`
	Answer   string `json:"answer"       validate:"required,min=1"`
	Order    *int   `json:"order"`
}

type UpdateFAQRequest struct {
	Question *string `json:"question,omitempty" validate:"omitempty,min=1"`
	Answer   *string `json:"answer,omitempty"   validate:"omitempty,min=1"`
	Order    *int    `json:"order,omitempty"`
}

type FAQResponse struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Order     *int      `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toFAQResponse(f *FAQ) FAQResponse {
	return FAQResponse{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		Order:     f.SortOrder,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func toFAQResponseList(items []FAQ) []FAQResponse {
	responses := make([]FAQResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toFAQResponse(&items[i]))
	}
	return responses
}

type MoveRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type ContentResponse struct {
	Profile     *ProfileResponse    `json:"profile"`
	CaseStudies []CaseStudyResponse `json:"caseStudies"`
	Insights    []InsightResponse   `json:"insights"`
	FAQs        []FAQResponse       `json:"faqs"`
}

type SubscriberResponse struct {
	Email string `json:"email"`
}
