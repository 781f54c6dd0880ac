package catalog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbelov/worklog/pkg/parsing"
)

// fakeStore is an in-memory implementation of all four catalog ports, enough
// for exercising the importer and use case without a database.
type fakeStore struct {
	companies map[uuid.UUID]Company
	jobs      map[uuid.UUID]Job
	bullets   map[uuid.UUID]BulletPoint
	skills    map[uuid.UUID]Skill
	links     map[[2]uuid.UUID]struct{}

	companyCreates int
	skillCreates   int
	linkCalls      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		companies: map[uuid.UUID]Company{},
		jobs:      map[uuid.UUID]Job{},
		bullets:   map[uuid.UUID]BulletPoint{},
		skills:    map[uuid.UUID]Skill{},
		links:     map[[2]uuid.UUID]struct{}{},
	}
}

func (f *fakeStore) GetOrCreate(ctx context.Context, userID uuid.UUID, name string) (Company, bool, error) {
	for _, c := range f.companies {
		if c.UserID == userID && strings.EqualFold(c.Name, name) {
			return c, false, nil
		}
	}
	c := Company{ID: uuid.New(), UserID: userID, Name: name, CreatedAt: time.Now().UTC()}
	f.companies[c.ID] = c
	f.companyCreates++
	return c, true, nil
}

func (f *fakeStore) GetByIDForOwner(ctx context.Context, userID, id uuid.UUID) (Company, error) {
	c, ok := f.companies[id]
	if !ok || c.UserID != userID {
		return Company{}, ErrNotFound
	}
	return c, nil
}

func (f *fakeStore) ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Company, error) {
	var out []Company
	for _, c := range f.companies {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) RenameForOwner(ctx context.Context, userID, id uuid.UUID, name string) error {
	c, err := f.GetByIDForOwner(ctx, userID, id)
	if err != nil {
		return err
	}
	c.Name = name
	f.companies[id] = c
	return nil
}

func (f *fakeStore) DeleteForOwner(ctx context.Context, userID, id uuid.UUID) error {
	delete(f.companies, id)
	return nil
}

type fakeJobs struct{ store *fakeStore }

func (f fakeJobs) Create(ctx context.Context, j Job) error {
	f.store.jobs[j.ID] = j
	return nil
}

func (f fakeJobs) GetByIDForOwner(ctx context.Context, userID, id uuid.UUID) (Job, error) {
	j, ok := f.store.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return j, nil
}

func (f fakeJobs) ListByCompanyForOwner(ctx context.Context, userID, companyID uuid.UUID, limit, offset int) ([]Job, error) {
	var out []Job
	for _, j := range f.store.jobs {
		if j.CompanyID == companyID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f fakeJobs) UpdateForOwner(ctx context.Context, userID uuid.UUID, j Job) error {
	f.store.jobs[j.ID] = j
	return nil
}

func (f fakeJobs) DeleteForOwner(ctx context.Context, userID, id uuid.UUID) error {
	delete(f.store.jobs, id)
	return nil
}

type fakeBullets struct{ store *fakeStore }

func (f fakeBullets) Create(ctx context.Context, b BulletPoint) error {
	f.store.bullets[b.ID] = b
	return nil
}

func (f fakeBullets) GetByIDForOwner(ctx context.Context, userID, id uuid.UUID) (BulletPoint, error) {
	b, ok := f.store.bullets[id]
	if !ok {
		return BulletPoint{}, ErrNotFound
	}
	return b, nil
}

func (f fakeBullets) ListByJobForOwner(ctx context.Context, userID, jobID uuid.UUID) ([]BulletPoint, error) {
	var out []BulletPoint
	for _, b := range f.store.bullets {
		if b.JobID == jobID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f fakeBullets) UpdateForOwner(ctx context.Context, userID uuid.UUID, b BulletPoint) error {
	f.store.bullets[b.ID] = b
	return nil
}

func (f fakeBullets) DeleteForOwner(ctx context.Context, userID, id uuid.UUID) error {
	delete(f.store.bullets, id)
	return nil
}

type fakeSkills struct{ store *fakeStore }

func (f fakeSkills) GetOrCreate(ctx context.Context, userID uuid.UUID, name string) (Skill, bool, error) {
	for _, s := range f.store.skills {
		if s.UserID == userID && strings.EqualFold(s.Name, name) {
			return s, false, nil
		}
	}
	s := Skill{ID: uuid.New(), UserID: userID, Name: name, CreatedAt: time.Now().UTC()}
	f.store.skills[s.ID] = s
	f.store.skillCreates++
	return s, true, nil
}

func (f fakeSkills) ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Skill, error) {
	var out []Skill
	for _, s := range f.store.skills {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f fakeSkills) DeleteForOwner(ctx context.Context, userID, id uuid.UUID) error {
	delete(f.store.skills, id)
	return nil
}

func (f fakeSkills) Link(ctx context.Context, userID, bulletPointID, skillID uuid.UUID) error {
	f.store.linkCalls++
	f.store.links[[2]uuid.UUID{bulletPointID, skillID}] = struct{}{}
	return nil
}

func (f fakeSkills) Unlink(ctx context.Context, userID, bulletPointID, skillID uuid.UUID) error {
	delete(f.store.links, [2]uuid.UUID{bulletPointID, skillID})
	return nil
}

func (f fakeSkills) ListByBulletForOwner(ctx context.Context, userID, bulletPointID uuid.UUID) ([]Skill, error) {
	var out []Skill
	for key := range f.store.links {
		if key[0] == bulletPointID {
			out = append(out, f.store.skills[key[1]])
		}
	}
	return out, nil
}

func newTestImporter(store *fakeStore) *Importer {
	return NewImporter(store, fakeJobs{store}, fakeBullets{store}, fakeSkills{store}, zerolog.Nop())
}

func sampleResume() *parsing.Resume {
	end := "2022-03-01"
	city, state := "Austin", "TX"
	return &parsing.Resume{
		Jobs: []parsing.Job{
			{
				Company:   "Acme",
				Title:     "Senior Engineer",
				IsRemote:  true,
				StartDate: "2022-03-01",
				IsCurrent: true,
				BulletPoints: []parsing.BulletPoint{
					{Text: "Led a team of five engineers", Skills: []string{"Leadership"}},
				},
			},
			{
				Company:   "acme",
				Title:     "Software Engineer",
				City:      &city,
				State:     &state,
				StartDate: "2020-01",
				EndDate:   &end,
				BulletPoints: []parsing.BulletPoint{
					{Text: "Built a distributed scheduler", Skills: []string{"Go", "Rowing"}},
				},
			},
		},
		Skills: []string{"Go", "Leadership"},
	}
}

func TestImportResume(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()

	res, err := newTestImporter(store).ImportResume(context.Background(), userID, sampleResume())
	require.NoError(t, err)

	// "Acme" and "acme" are the same company.
	assert.Equal(t, 1, store.companyCreates)
	assert.Equal(t, 2, res.Jobs)
	assert.Equal(t, 2, res.BulletPoints)
	assert.Equal(t, 2, res.Skills)
	// "Rowing" is not in the resume skill set: skipped, never created.
	assert.Equal(t, 2, res.Links)
	assert.Equal(t, 1, res.SkippedSkills)
	assert.Equal(t, 2, store.skillCreates)
	assert.Len(t, store.links, 2)
}

func TestImportResumeDateParsing(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()

	_, err := newTestImporter(store).ImportResume(context.Background(), userID, sampleResume())
	require.NoError(t, err)

	var current, past Job
	for _, j := range store.jobs {
		if j.IsCurrent {
			current = j
		} else {
			past = j
		}
	}
	require.NotNil(t, current.StartDate)
	assert.Equal(t, time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC), *current.StartDate)
	assert.Nil(t, current.EndDate)

	// Year-month shorthand resolves to the first of the month.
	require.NotNil(t, past.StartDate)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), *past.StartDate)
	require.NotNil(t, past.EndDate)
}

func TestImportResumeIdempotentReimport(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	importer := newTestImporter(store)

	first, err := importer.ImportResume(context.Background(), userID, sampleResume())
	require.NoError(t, err)
	second, err := importer.ImportResume(context.Background(), userID, sampleResume())
	require.NoError(t, err)

	// Companies and skills are reused, not duplicated. Jobs are appended.
	assert.Equal(t, 1, store.companyCreates)
	assert.Equal(t, 2, store.skillCreates)
	assert.Len(t, store.jobs, 4)

	// Counts report creations only: the second import created nothing new
	// besides jobs and bullets.
	assert.Equal(t, 1, first.Companies)
	assert.Equal(t, 2, first.Skills)
	assert.Equal(t, 0, second.Companies)
	assert.Equal(t, 0, second.Skills)
	assert.Equal(t, 2, second.Jobs)
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want *time.Time
	}{
		{"2023-07-15", timePtr(2023, 7, 15)},
		{"2023-07", timePtr(2023, 7, 1)},
		{"2023", timePtr(2023, 1, 1)},
		{"July 2023", nil},
		{"present", nil},
		{"", nil},
	}
	for _, tc := range cases {
		got := parseDate(tc.in)
		if tc.want == nil {
			assert.Nil(t, got, "input %q", tc.in)
			continue
		}
		require.NotNil(t, got, "input %q", tc.in)
		assert.Equal(t, *tc.want, *got, "input %q", tc.in)
	}
}

func timePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestImportBullets(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	jobID := uuid.New()
	store.jobs[jobID] = Job{ID: jobID}

	candidates := []parsing.BulletCandidate{
		{Text: "Automated deployments with Terraform", Tags: []string{"Terraform", "CI/CD"}},
		{Text: "Wrote runbooks for the on-call rotation", Tags: nil},
	}
	res, err := newTestImporter(store).ImportBullets(context.Background(), userID, jobID, candidates)
	require.NoError(t, err)
	assert.Equal(t, 2, res.BulletPoints)
	assert.Equal(t, 2, res.Links)
	assert.Equal(t, 2, store.skillCreates)

	positions := map[int]bool{}
	for _, b := range store.bullets {
		positions[b.Position] = true
	}
	assert.True(t, positions[0] && positions[1])
}

func TestImportBulletsUnknownJob(t *testing.T) {
	store := newFakeStore()
	_, err := newTestImporter(store).ImportBullets(context.Background(), uuid.New(), uuid.New(), nil)
	require.ErrorIs(t, err, ErrNotFound)
}
