// AngelaMos | 2026
// service_test.go

package content

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

type fakeRepository struct {
	profile     *Profile
	caseStudies map[string]*CaseStudy
	insights    map[string]*Insight
	faqs        map[string]*FAQ
	subscribers []NewsletterSubscriber
	seq         int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		caseStudies: map[string]*CaseStudy{},
		insights:    map[string]*Insight{},
		faqs:        map[string]*FAQ{},
	}
}

func (f *fakeRepository) stamp() time.Time {
	f.seq++
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(f.seq) * time.Minute)
}

func (f *fakeRepository) GetProfile(ctx context.Context) (*Profile, error) {
	if f.profile == nil {
		return nil, core.ErrNotFound
	}
	copied := *f.profile
	return &copied, nil
}

func (f *fakeRepository) UpsertProfile(
	ctx context.Context,
	profile *Profile,
) (*Profile, error) {
	copied := *profile
	if f.profile != nil {
		copied.AdminTokenHash = f.profile.AdminTokenHash
		copied.CreatedAt = f.profile.CreatedAt
	} else {
		copied.CreatedAt = f.stamp()
	}
	copied.UpdatedAt = f.stamp()
	f.profile = &copied
	result := copied
	return &result, nil
}

func (f *fakeRepository) GetAdminTokenHash(
	ctx context.Context,
) (string, error) {
	if f.profile == nil || f.profile.AdminTokenHash == nil {
		return "", nil
	}
	return *f.profile.AdminTokenHash, nil
}

func (f *fakeRepository) UpdateAdminTokenHash(
	ctx context.Context,
	hash string,
) error {
	if f.profile == nil {
		f.profile = &Profile{ID: ProfileID, Name: "Admin"}
	}
	f.profile.AdminTokenHash = &hash
	return nil
}

func (f *fakeRepository) ListCaseStudies(
	ctx context.Context,
) ([]CaseStudy, error) {
	items := make([]CaseStudy, 0, len(f.caseStudies))
	for _, cs := range f.caseStudies {
		items = append(items, *cs)
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.SortOrder != nil && b.SortOrder != nil &&
			*a.SortOrder != *b.SortOrder:
			return *a.SortOrder < *b.SortOrder
		case a.SortOrder != nil && b.SortOrder == nil:
			return true
		case a.SortOrder == nil && b.SortOrder != nil:
			return false
		case a.Featured != b.Featured:
			return a.Featured
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
	return items, nil
}

func (f *fakeRepository) GetCaseStudy(
	ctx context.Context,
	id string,
) (*CaseStudy, error) {
	cs, ok := f.caseStudies[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *cs
	return &copied, nil
}

func (f *fakeRepository) CreateCaseStudy(
	ctx context.Context,
	cs *CaseStudy,
) (*CaseStudy, error) {
	if _, ok := f.caseStudies[cs.ID]; ok {
		return nil, core.ErrDuplicateKey
	}
	copied := *cs
	copied.CreatedAt = f.stamp()
	copied.UpdatedAt = copied.CreatedAt
	f.caseStudies[cs.ID] = &copied
	result := copied
	return &result, nil
}

func (f *fakeRepository) UpdateCaseStudy(
	ctx context.Context,
	cs *CaseStudy,
) (*CaseStudy, error) {
	existing, ok := f.caseStudies[cs.ID]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *cs
	copied.CreatedAt = existing.CreatedAt
	copied.UpdatedAt = f.stamp()
	f.caseStudies[cs.ID] = &copied
	result := copied
	return &result, nil
}

func (f *fakeRepository) DeleteCaseStudy(ctx context.Context, id string) error {
	if _, ok := f.caseStudies[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.caseStudies, id)
	return nil
}

func (f *fakeRepository) SetCaseStudyOrders(
	ctx context.Context,
	updates []OrderUpdate,
) error {
	for _, u := range updates {
		cs, ok := f.caseStudies[u.ID]
		if !ok {
			return core.ErrNotFound
		}
		order := u.SortOrder
		cs.SortOrder = &order
	}
	return nil
}

func (f *fakeRepository) ListInsights(ctx context.Context) ([]Insight, error) {
	items := make([]Insight, 0, len(f.insights))
	for _, in := range f.insights {
		items = append(items, *in)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Featured != items[j].Featured {
			return items[i].Featured
		}
		return items[i].Date > items[j].Date
	})
	return items, nil
}

func (f *fakeRepository) GetInsight(
	ctx context.Context,
	id string,
) (*Insight, error) {
	in, ok := f.insights[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *in
	return &copied, nil
}

func (f *fakeRepository) CreateInsight(
	ctx context.Context,
	in *Insight,
) (*Insight, error) {
	if _, ok := f.insights[in.ID]; ok {
		return nil, core.ErrDuplicateKey
	}
	copied := *in
	copied.CreatedAt = f.stamp()
	copied.UpdatedAt = copied.CreatedAt
	f.insights[in.ID] = &copied
	result := copied
	return &result, nil
}

func (f *fakeRepository) UpdateInsight(
	ctx context.Context,
	in *Insight,
) (*Insight, error) {
	existing, ok := f.insights[in.ID]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *in
	copied.CreatedAt = existing.CreatedAt
	copied.UpdatedAt = f.stamp()
	f.insights[in.ID] = &copied
	result := copied
	return &result, nil
}

func (f *fakeRepository) DeleteInsight(ctx context.Context, id string) error {
	if _, ok := f.insights[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.insights, id)
	return nil
}

func (f *fakeRepository) ListFAQs(ctx context.Context) ([]FAQ, error) {
	items := make([]FAQ, 0, len(f.faqs))
	for _, faq := range f.faqs {
		items = append(items, *faq)
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.SortOrder != nil && b.SortOrder != nil &&
			*a.SortOrder != *b.SortOrder:
			return *a.SortOrder < *b.SortOrder
		case a.SortOrder != nil && b.SortOrder == nil:
			return true
		case a.SortOrder == nil && b.SortOrder != nil:
			return false
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})
	return items, nil
}

func (f *fakeRepository) GetFAQ(ctx context.Context, id string) (*FAQ, error) {
	faq, ok := f.faqs[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *faq
	return &copied, nil
}

func (f *fakeRepository) CreateFAQ(ctx context.Context, faq *FAQ) (*FAQ, error) {
	if _, ok := f.faqs[faq.ID]; ok {
		return nil, core.ErrDuplicateKey
	}
	copied := *faq
	copied.CreatedAt = f.stamp()
	copied.UpdatedAt = copied.CreatedAt
	f.faqs[faq.ID] = &copied
	result := copied
	return &result, nil
}

func (f *fakeRepository) UpdateFAQ(ctx context.Context, faq *FAQ) (*FAQ, error) {
	existing, ok := f.faqs[faq.ID]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *faq
	copied.CreatedAt = existing.CreatedAt
	copied.UpdatedAt = f.stamp()
	f.faqs[faq.ID] = &copied
	result := copied
	return &result, nil
}

func (f *fakeRepository) DeleteFAQ(ctx context.Context, id string) error {
	if _, ok := f.faqs[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.faqs, id)
	return nil
}

func (f *fakeRepository) SetFAQOrders(
	ctx context.Context,
	updates []OrderUpdate,
) error {
	for _, u := range updates {
		faq, ok := f.faqs[u.ID]
		if !ok {
			return core.ErrNotFound
		}
		order := u.SortOrder
		faq.SortOrder = &order
	}
	return nil
}

func (f *fakeRepository) AddNewsletterSubscriber(
	ctx context.Context,
	email string,
) (bool, error) {
	for _, sub := range f.subscribers {
		if sub.Email == email {
			return false, nil
		}
	}
	f.subscribers = append(f.subscribers, NewsletterSubscriber{
		Email:     email,
		CreatedAt: f.stamp(),
	})
	return true, nil
}

func (f *fakeRepository) ListNewsletterSubscribers(
	ctx context.Context,
) ([]NewsletterSubscriber, error) {
	return append([]NewsletterSubscriber{}, f.subscribers...), nil
}

var _ Repository = (*fakeRepository)(nil)

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo), repo
}

func TestSaveProfileRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	payload := &ProfilePayload{
		Name:  "Angela Castillo",
		Title: "Bid Director",
		Email: "angela@example.com",
		Stats: ProfileStats{
			YearsOfExperience:   "15+",
			TotalFundingSecured: "$120M",
		},
		Bio:        ProfileBio{Short: "short", Full: "full"},
		Philosophy: []string{"clarity", "rigor"},
	}

	saved, err := svc.SaveProfile(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "Angela Castillo", saved.Name)
	assert.Equal(t, "15+", saved.Stats.YearsOfExperience)
	assert.Nil(t, saved.CTA)

	got, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestSaveProfilePreservesAdminToken(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.UpdateAdminTokenHash(ctx, "hash-value"))

	_, err := svc.SaveProfile(ctx, &ProfilePayload{
		Name:  "Angela",
		Email: "angela@example.com",
	})
	require.NoError(t, err)

	hash, err := repo.GetAdminTokenHash(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hash-value", hash)
}

func TestProfileCTADefaults(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	saved, err := svc.SaveProfile(ctx, &ProfilePayload{
		Name:  "Angela",
		Email: "angela@example.com",
		CTA:   &ProfileCTA{Heading: "Hire me"},
	})
	require.NoError(t, err)

	require.NotNil(t, saved.CTA)
	assert.Equal(t, "Hire me", saved.CTA.Heading)
	assert.Equal(t, "Get in Touch", saved.CTA.ButtonLabel)
	assert.Equal(t, "/contact", saved.CTA.ButtonHref)
}

func TestGetProfileNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetProfile(context.Background())
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestCreateCaseStudyGeneratesID(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.CreateCaseStudy(ctx, &CaseStudyPayload{
		Title:         "Hospital Expansion",
		Client:        "MoH",
		Sector:        "Healthcare",
		ContractValue: "$40M",
		Country:       "Kenya",
		Description:   "Won a competitive tender.",
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := svc.CreateCaseStudy(ctx, &CaseStudyPayload{
		Title:         "Rail Modernization",
		Client:        "Transit Authority",
		Sector:        "Transport",
		ContractValue: "$200M",
		Country:       "Chile",
		Description:   "Framework agreement.",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateCaseStudyDuplicateID(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	payload := &CaseStudyPayload{
		ID:            "cs-1",
		Title:         "A",
		Client:        "B",
		Sector:        "C",
		ContractValue: "D",
		Country:       "E",
		Description:   "F",
	}

	_, err := svc.CreateCaseStudy(ctx, payload)
	require.NoError(t, err)

	_, err = svc.CreateCaseStudy(ctx, payload)
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestUpdateCaseStudyPartialMerge(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateCaseStudy(ctx, &CaseStudyPayload{
		ID:            "cs-1",
		Title:         "Original Title",
		Client:        "Client",
		Sector:        "Sector",
		ContractValue: "$1M",
		Country:       "Spain",
		Description:   "Desc",
		Featured:      true,
	})
	require.NoError(t, err)

	newTitle := "Updated Title"
	updated, err := svc.UpdateCaseStudy(ctx, created.ID, &UpdateCaseStudyRequest{
		Title: &newTitle,
	})
	require.NoError(t, err)

	assert.Equal(t, "Updated Title", updated.Title)
	assert.Equal(t, "Client", updated.Client)
	assert.True(t, updated.Featured)
}

func TestUpdateMissingInsight(t *testing.T) {
	svc, _ := newTestService()

	title := "x"
	_, err := svc.UpdateInsight(
		context.Background(),
		"missing",
		&UpdateInsightRequest{Title: &title},
	)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeleteMissingFAQ(t *testing.T) {
	svc, _ := newTestService()

	err := svc.DeleteFAQ(context.Background(), "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func createFAQs(t *testing.T, svc *Service, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		order := i
		faq, err := svc.CreateFAQ(context.Background(), &FAQPayload{
			Question: "Q",
			Answer:   "A",
			Order:    &order,
		})
		require.NoError(t, err)
		ids = append(ids, faq.ID)
	}
	return ids
}

func faqOrder(t *testing.T, svc *Service) []string {
	t.Helper()
	items, err := svc.ListFAQs(context.Background())
	require.NoError(t, err)
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestMoveFAQUpSwapsNeighbors(t *testing.T) {
	svc, _ := newTestService()
	ids := createFAQs(t, svc, 3)

	require.NoError(t, svc.MoveFAQ(context.Background(), ids[1], "up"))

	assert.Equal(t, []string{ids[1], ids[0], ids[2]}, faqOrder(t, svc))
}

func TestMoveFAQDownSwapsNeighbors(t *testing.T) {
	svc, _ := newTestService()
	ids := createFAQs(t, svc, 3)

	require.NoError(t, svc.MoveFAQ(context.Background(), ids[1], "down"))

	assert.Equal(t, []string{ids[0], ids[2], ids[1]}, faqOrder(t, svc))
}

func TestMoveFAQAtEdgeIsNoop(t *testing.T) {
	svc, _ := newTestService()
	ids := createFAQs(t, svc, 3)

	require.NoError(t, svc.MoveFAQ(context.Background(), ids[0], "up"))
	require.NoError(t, svc.MoveFAQ(context.Background(), ids[2], "down"))

	assert.Equal(t, ids, faqOrder(t, svc))
}

func TestMoveFAQAssignsOrderToUnorderedRows(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateFAQ(ctx, &FAQPayload{Question: "Q1", Answer: "A"})
	require.NoError(t, err)
	second, err := svc.CreateFAQ(ctx, &FAQPayload{Question: "Q2", Answer: "A"})
	require.NoError(t, err)

	require.NoError(t, svc.MoveFAQ(ctx, second.ID, "up"))

	items, err := svc.ListFAQs(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	require.NotNil(t, items[0].Order)
	require.NotNil(t, items[1].Order)
	assert.Equal(t, 0, *items[0].Order)
	assert.Equal(t, 1, *items[1].Order)
}

func TestMoveMissingCaseStudy(t *testing.T) {
	svc, _ := newTestService()

	err := svc.MoveCaseStudy(context.Background(), "missing", "up")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestCaseStudyListOrdering(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	two := 2
	zero := 0
	_, err := svc.CreateCaseStudy(ctx, &CaseStudyPayload{
		ID: "later", Title: "t", Client: "c", Sector: "s",
		ContractValue: "v", Country: "x", Description: "d",
		Order: &two,
	})
	require.NoError(t, err)
	_, err = svc.CreateCaseStudy(ctx, &CaseStudyPayload{
		ID: "first", Title: "t", Client: "c", Sector: "s",
		ContractValue: "v", Country: "x", Description: "d",
		Order: &zero,
	})
	require.NoError(t, err)
	_, err = svc.CreateCaseStudy(ctx, &CaseStudyPayload{
		ID: "unordered", Title: "t", Client: "c", Sector: "s",
		ContractValue: "v", Country: "x", Description: "d",
	})
	require.NoError(t, err)

	items, err := svc.ListCaseStudies(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].ID)
	assert.Equal(t, "later", items[1].ID)
	assert.Equal(t, "unordered", items[2].ID)
}

func TestGetAllContentToleratesMissingProfile(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateFAQ(ctx, &FAQPayload{Question: "Q", Answer: "A"})
	require.NoError(t, err)

	all, err := svc.GetAllContent(ctx)
	require.NoError(t, err)
	assert.Nil(t, all.Profile)
	assert.Len(t, all.FAQs, 1)
	assert.Empty(t, all.CaseStudies)
	assert.Empty(t, all.Insights)
}

func TestSubscribeNewsletterDeduplicates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.SubscribeNewsletter(ctx, "reader@example.com")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.SubscribeNewsletter(ctx, "reader@example.com")
	require.NoError(t, err)
	assert.False(t, created)

	subs, err := svc.ListNewsletterSubscribers(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}
