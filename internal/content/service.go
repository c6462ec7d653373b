// AngelaMos | 2026
// service.go

package content

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetProfile(ctx context.Context) (*ProfileResponse, error) {
	profile, err := s.repo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func (s *Service) SaveProfile(
	ctx context.Context,
	payload *ProfilePayload,
) (*ProfileResponse, error) {
	saved, err := s.repo.UpsertProfile(ctx, payload.toEntity())
	if err != nil {
		return nil, err
	}
	return toProfileResponse(saved), nil
}

// GetAllContent assembles the public site payload in one call. A missing
// profile is represented as null rather than failing the whole response.
func (s *Service) GetAllContent(ctx context.Context) (*ContentResponse, error) {
	response := &ContentResponse{}

	profile, err := s.repo.GetProfile(ctx)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}
	if profile != nil {
		response.Profile = toProfileResponse(profile)
	}

	caseStudies, err := s.repo.ListCaseStudies(ctx)
	if err != nil {
		return nil, err
	}
	response.CaseStudies = toCaseStudyResponseList(caseStudies)

	insights, err := s.repo.ListInsights(ctx)
	if err != nil {
		return nil, err
	}
	response.Insights = toInsightResponseList(insights)

	faqs, err := s.repo.ListFAQs(ctx)
	if err != nil {
		return nil, err
	}
	response.FAQs = toFAQResponseList(faqs)

	return response, nil
}

func (s *Service) ListCaseStudies(
	ctx context.Context,
) ([]CaseStudyResponse, error) {
	items, err := s.repo.ListCaseStudies(ctx)
	if err != nil {
		return nil, err
	}
	return toCaseStudyResponseList(items), nil
}

func (s *Service) CreateCaseStudy(
	ctx context.Context,
	payload *CaseStudyPayload,
) (*CaseStudyResponse, error) {
	cs := &CaseStudy{
		ID:              payload.ID,
		Title:           payload.Title,
		Client:          payload.Client,
		Sector:          payload.Sector,
		ContractValue:   payload.ContractValue,
		Country:         payload.Country,
		Description:     payload.Description,
		KeyAchievements: payload.KeyAchievements,
		Image:           payload.Image,
		Featured:        payload.Featured,
		SortOrder:       payload.Order,
	}
	if cs.ID == "" {
		cs.ID = uuid.New().String()
	}

	saved, err := s.repo.CreateCaseStudy(ctx, cs)
	if err != nil {
		return nil, err
	}

	response := toCaseStudyResponse(saved)
	return &response, nil
}

func (s *Service) UpdateCaseStudy(
	ctx context.Context,
	id string,
	req *UpdateCaseStudyRequest,
) (*CaseStudyResponse, error) {
	existing, err := s.repo.GetCaseStudy(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Client != nil {
		existing.Client = *req.Client
	}
	if req.Sector != nil {
		existing.Sector = *req.Sector
	}
	if req.ContractValue != nil {
		existing.ContractValue = *req.ContractValue
	}
	if req.Country != nil {
		existing.Country = *req.Country
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.KeyAchievements != nil {
		existing.KeyAchievements = *req.KeyAchievements
	}
	if req.Image != nil {
		existing.Image = *req.Image
	}
	if req.Featured != nil {
		existing.Featured = *req.Featured
	}
	if req.Order != nil {
		existing.SortOrder = req.Order
	}

	saved, err := s.repo.UpdateCaseStudy(ctx, existing)
	if err != nil {
		return nil, err
	}

	response := toCaseStudyResponse(saved)
	return &response, nil
}

func (s *Service) DeleteCaseStudy(ctx context.Context, id string) error {
	return s.repo.DeleteCaseStudy(ctx, id)
}

// MoveCaseStudy swaps the item with its neighbor in the current display
// order. Moving the first item up or the last item down is a no-op.
func (s *Service) MoveCaseStudy(
	ctx context.Context,
	id string,
	direction string,
) error {
	items, err := s.repo.ListCaseStudies(ctx)
	if err != nil {
		return err
	}

	updates, err := moveUpdates(len(items), direction, func(i int) string {
		return items[i].ID
	}, id)
	if err != nil {
		return err
	}
	if updates == nil {
		return nil
	}

	return s.repo.SetCaseStudyOrders(ctx, updates)
}

func (s *Service) ListInsights(ctx context.Context) ([]InsightResponse, error) {
	items, err := s.repo.ListInsights(ctx)
	if err != nil {
		return nil, err
	}
	return toInsightResponseList(items), nil
}

func (s *Service) CreateInsight(
	ctx context.Context,
	payload *InsightPayload,
) (*InsightResponse, error) {
	in := &Insight{
		ID:       payload.ID,
		Title:    payload.Title,
		Excerpt:  payload.Excerpt,
		Content:  payload.Content,
		Category: payload.Category,
		Date:     payload.Date,
		ReadTime: payload.ReadTime,
		Featured: payload.Featured,
	}
	if in.ID == "" {
		in.ID = uuid.New().String()
	}

	saved, err := s.repo.CreateInsight(ctx, in)
	if err != nil {
		return nil, err
	}

	response := toInsightResponse(saved)
	return &response, nil
}

func (s *Service) UpdateInsight(
	ctx context.Context,
	id string,
	req *UpdateInsightRequest,
) (*InsightResponse, error) {
	existing, err := s.repo.GetInsight(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Excerpt != nil {
		existing.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		existing.Content = *req.Content
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.Date != nil {
		existing.Date = *req.Date
	}
	if req.ReadTime != nil {
		existing.ReadTime = *req.ReadTime
	}
	if req.Featured != nil {
		existing.Featured = *req.Featured
	}

	saved, err := s.repo.UpdateInsight(ctx, existing)
	if err != nil {
		return nil, err
	}

	response := toInsightResponse(saved)
	return &response, nil
}

func (s *Service) DeleteInsight(ctx context.Context, id string) error {
	return s.repo.DeleteInsight(ctx, id)
}

func (s *Service) ListFAQs(ctx context.Context) ([]FAQResponse, error) {
	items, err := s.repo.ListFAQs(ctx)
	if err != nil {
		return nil, err
	}
	return toFAQResponseList(items), nil
}

func (s *Service) CreateFAQ(
	ctx context.Context,
	payload *FAQPayload,
) (*FAQResponse, error) {
	f := &FAQ{
		ID:        payload.ID,
		Question:  payload.Question,
		Answer:    payload.Answer,
		SortOrder: payload.Order,
	}
	if f.ID == "" {
		f.ID = uuid.New().String()
	}

	saved, err := s.repo.CreateFAQ(ctx, f)
	if err != nil {
		return nil, err
	}

	response := toFAQResponse(saved)
	return &response, nil
}

func (s *Service) UpdateFAQ(
	ctx context.Context,
	id string,
	req *UpdateFAQRequest,
) (*FAQResponse, error) {
	existing, err := s.repo.GetFAQ(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Question != nil {
		existing.Question = *req.Question
	}
	if req.Answer != nil {
		existing.Answer = *req.Answer
	}
	if req.Order != nil {
		existing.SortOrder = req.Order
	}

	saved, err := s.repo.UpdateFAQ(ctx, existing)
	if err != nil {
		return nil, err
	}

	response := toFAQResponse(saved)
	return &response, nil
}

func (s *Service) DeleteFAQ(ctx context.Context, id string) error {
	return s.repo.DeleteFAQ(ctx, id)
}

func (s *Service) MoveFAQ(
	ctx context.Context,
	id string,
	direction string,
) error {
	items, err := s.repo.ListFAQs(ctx)
	if err != nil {
		return err
	}

	updates, err := moveUpdates(len(items), direction, func(i int) string {
		return items[i].ID
	}, id)
	if err != nil {
		return err
	}
	if updates == nil {
		return nil
	}

	return s.repo.SetFAQOrders(ctx, updates)
}

// moveUpdates computes the two order writes for a swap within the current
// display order. The moved item takes its neighbor's position index and
// vice versa, which also assigns concrete positions to rows that never had
// an explicit order. Returns nil updates when the move falls off either end.
func moveUpdates(
	count int,
	direction string,
	idAt func(int) string,
	id string,
) ([]OrderUpdate, error) {
	idx := -1
	for i := 0; i < count; i++ {
		if idAt(i) == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, core.ErrNotFound
	}

	neighbor := idx - 1
	if direction == "down" {
		neighbor = idx + 1
	}
	if neighbor < 0 || neighbor >= count {
		return nil, nil
	}

	return []OrderUpdate{
		{ID: idAt(idx), SortOrder: neighbor},
		{ID: idAt(neighbor), SortOrder: idx},
	}, nil
}

func (s *Service) SubscribeNewsletter(
	ctx context.Context,
	email string,
) (bool, error) {
	return s.repo.AddNewsletterSubscriber(ctx, email)
}

func (s *Service) ListNewsletterSubscribers(
	ctx context.Context,
) ([]SubscriberResponse, error) {
	items, err := s.repo.ListNewsletterSubscribers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]SubscriberResponse, 0, len(items))
	for _, sub := range items {
		responses = append(responses, SubscriberResponse{Email: sub.Email})
	}
	return responses, nil
}

// GetAdminTokenHash exposes the stored credential for the auth gate.
func (s *Service) GetAdminTokenHash(ctx context.Context) (string, error) {
	return s.repo.GetAdminTokenHash(ctx)
}

func (s *Service) UpdateAdminTokenHash(
	ctx context.Context,
	hash string,
) error {
	return s.repo.UpdateAdminTokenHash(ctx, hash)
}
