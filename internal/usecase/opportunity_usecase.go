package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/opphub/opphub/internal/catalog"
	"github.com/opphub/opphub/internal/dashboard"
	"github.com/opphub/opphub/internal/dto"
	"github.com/opphub/opphub/internal/model"
)

type OpportunityUsecase struct {
	opportunityRepo OpportunityStore
	applicationRepo ApplicationStore
	bookmarkRepo    BookmarkStore
	now             func() time.Time
}

func NewOpportunityUsecase(opportunityRepo OpportunityStore, applicationRepo ApplicationStore, bookmarkRepo BookmarkStore) *OpportunityUsecase {
	return &OpportunityUsecase{
		opportunityRepo: opportunityRepo,
		applicationRepo: applicationRepo,
		bookmarkRepo:    bookmarkRepo,
		now:             time.Now,
	}
}

// Browse lists the catalog filtered by the criteria, preserving catalog
// order. With urgentOnly the deadline-soon predicate is recomputed against
// request-time now. userID may be empty; personalized fields are zero then.
func (uc *OpportunityUsecase) Browse(userID string, criteria catalog.Criteria, urgentOnly bool) ([]dto.OpportunityDTO, error) {
	opportunities, err := uc.opportunityRepo.List()
	if err != nil {
		return nil, err
	}

	filtered := catalog.Filter(opportunities, criteria)

	now := uc.now()
	if urgentOnly {
		urgent := filtered[:0]
		for _, opp := range filtered {
			if catalog.Urgent(opp.Deadline, now) {
				urgent = append(urgent, opp)
			}
		}
		filtered = urgent
	}

	applications, bookmarks, err := uc.activityFor(userID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.OpportunityDTO, 0, len(filtered))
	for _, opp := range filtered {
		result = append(result, uc.decorate(opp, applications, bookmarks, now))
	}
	return result, nil
}

func (uc *OpportunityUsecase) Get(userID string, id uuid.UUID) (*dto.OpportunityDTO, error) {
	opp, err := uc.opportunityRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	applications, bookmarks, err := uc.activityFor(userID)
	if err != nil {
		return nil, err
	}
	decorated := uc.decorate(*opp, applications, bookmarks, uc.now())
	return &decorated, nil
}

func (uc *OpportunityUsecase) Counts() (map[string]int, error) {
	opportunities, err := uc.opportunityRepo.List()
	if err != nil {
		return nil, err
	}
	return catalog.CountsByCategory(opportunities), nil
}

func (uc *OpportunityUsecase) activityFor(userID string) ([]model.Application, []model.Bookmark, error) {
	if userID == "" {
		return nil, nil, nil
	}
	applications, err := uc.applicationRepo.ListByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	bookmarks, err := uc.bookmarkRepo.ListByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	return applications, bookmarks, nil
}

func (uc *OpportunityUsecase) decorate(opp model.Opportunity, applications []model.Application, bookmarks []model.Bookmark, now time.Time) dto.OpportunityDTO {
	item := dto.OpportunityDTO{
		ID:           opp.ID,
		Title:        opp.Title,
		Description:  opp.Description,
		Category:     opp.Category,
		Source:       opp.Source,
		Deadline:     opp.Deadline,
		DeadlineInfo: catalog.Classify(opp.Deadline, now),
		Urgent:       catalog.Urgent(opp.Deadline, now),
		Location:     opp.Location,
		Eligibility:  opp.Eligibility,
		Difficulty:   opp.Difficulty,
		Tags:         opp.Tags,
		ApplyURL:     opp.ApplyURL,
		IsBookmarked: dashboard.IsBookmarked(bookmarks, opp.ID),
		CreatedAt:    opp.CreatedAt,
		UpdatedAt:    opp.UpdatedAt,
	}
	if app := dashboard.ApplicationFor(applications, opp.ID); app != nil {
		item.HasApplied = true
		item.ApplicationStatus = app.Status
	}
	return item
}

// SeedCatalog loads the built-in catalog. Upsert by ID keeps it idempotent.
func (uc *OpportunityUsecase) SeedCatalog() error {
	return uc.opportunityRepo.UpsertBatch(seedCatalog(uc.now()))
}

func seedCatalog(now time.Time) []model.Opportunity {
	day := 24 * time.Hour
	return []model.Opportunity{
		{
			ID:          uuid.MustParse("5e6f45b1-0a17-4bfe-8e62-1a6e2c9d0a01"),
			Title:       "Google Summer of Code 2026",
			Description: "Contribute to open source projects under the mentorship of experienced developers. Stipend provided for accepted contributors.",
			Category:    model.CategoryInternship,
			Source:      model.SourceOther,
			Deadline:    now.Add(45 * day),
			Location:    "Remote",
			Eligibility: pq.StringArray{"University students", "18+ years old"},
			Difficulty:  model.DifficultyIntermediate,
			Tags:        pq.StringArray{"open source", "software", "mentorship"},
			ApplyURL:    "https://summerofcode.withgoogle.com",
		},
		{
			ID:          uuid.MustParse("5e6f45b1-0a17-4bfe-8e62-1a6e2c9d0a02"),
			Title:       "Smart India Hackathon",
			Description: "National-level hackathon solving real-world problem statements from government ministries and industry.",
			Category:    model.CategoryHackathon,
			Source:      model.SourceUnstop,
			Deadline:    now.Add(6 * day),
			Location:    "Hybrid",
			Eligibility: pq.StringArray{"Engineering students"},
			Difficulty:  model.DifficultyAdvanced,
			Tags:        pq.StringArray{"hackathon", "innovation", "government"},
			ApplyURL:    "https://unstop.com/hackathons/smart-india-hackathon",
		},
		{
			ID:          uuid.MustParse("5e6f45b1-0a17-4bfe-8e62-1a6e2c9d0a03"),
			Title:       "ETHGlobal Online Hackathon",
			Description: "Build decentralized applications on Ethereum with workshops, mentors and prize pools from leading protocols.",
			Category:    model.CategoryHackathon,
			Source:      model.SourceDevfolio,
			Deadline:    now.Add(20 * day),
			Location:    "Remote",
			Eligibility: pq.StringArray{"Open to all"},
			Difficulty:  model.DifficultyIntermediate,
			Tags:        pq.StringArray{"blockchain", "web3", "ethereum"},
			ApplyURL:    "https://ethglobal.com",
		},
		{
			ID:          uuid.MustParse("5e6f45b1-0a17-4bfe-8e62-1a6e2c9d0a04"),
			Title:       "HackerEarth Machine Learning Challenge",
			Description: "Competitive machine learning contest with a real dataset. Top submissions win cash prizes and interview fast-tracks.",
			Category:    model.CategoryContest,
			Source:      model.SourceHackerearth,
			Deadline:    now.Add(3 * day),
			Location:    "Remote",
			Eligibility: pq.StringArray{"Open to all"},
			Difficulty:  model.DifficultyAdvanced,
			Tags:        pq.StringArray{"machine learning", "data science", "competition"},
			ApplyURL:    "https://www.hackerearth.com/challenges",
		},
		{
			ID:          uuid.MustParse("5e6f45b1-0a17-4bfe-8e62-1a6e2c9d0a05"),
			Title:       "Microsoft Software Engineering Internship",
			Description: "12-week summer internship working on production systems with a dedicated mentor. Open to penultimate-year students.",
			Category:    model.CategoryInternship,
			Source:      model.SourceUnstop,
			Deadline:    now.Add(30 * day),
			Location:    "Bangalore",
			Eligibility: pq.StringArray{"Penultimate-year students", "CS or related major"},
			Difficulty:  model.DifficultyIntermediate,
			Tags:        pq.StringArray{"software", "internship", "backend"},
			ApplyURL:    "https://careers.microsoft.com/students",
		},
		{
			ID:          uuid.MustParse("5e6f45b1-0a17-4bfe-8e62-1a6e2c9d0a06"),
			Title:       "Women in Tech Scholarship",
			Description: "Merit scholarship supporting women pursuing degrees in computer science and engineering.",
			Category:    model.CategoryScholarship,
			Source:      model.SourceOther,
			Deadline:    now.Add(60 * day),
			Location:    "Remote",
			Eligibility: pq.StringArray{"Women in STEM", "Undergraduate students"},
			Difficulty:  model.DifficultyBeginner,
			Tags:        pq.StringArray{"scholarship", "diversity", "STEM"},
			ApplyURL:    "https://example.org/wit-scholarship",
		},
		{
			ID:          uuid.MustParse("5e6f45b1-0a17-4bfe-8e62-1a6e2c9d0a07"),
			Title:       "CodeChef Starters Contest",
			Description: "Weekly rated competitive programming contest for all divisions.",
			Category:    model.CategoryContest,
			Source:      model.SourceOther,
			Deadline:    now.Add(1 * day),
			Location:    "Remote",
			Eligibility: pq.StringArray{"Open to all"},
			Difficulty:  model.DifficultyBeginner,
			Tags:        pq.StringArray{"competitive programming", "algorithms"},
			ApplyURL:    "https://www.codechef.com/contests",
		},
		{
			ID:          uuid.MustParse("5e6f45b1-0a17-4bfe-8e62-1a6e2c9d0a08"),
			Title:       "National Merit Scholarship",
			Description: "Need-and-merit scholarship for undergraduate students with outstanding academic records.",
			Category:    model.CategoryScholarship,
			Source:      model.SourceOther,
			Deadline:    now.Add(90 * day),
			Location:    "India",
			Eligibility: pq.StringArray{"Undergraduate students", "85%+ aggregate"},
			Difficulty:  model.DifficultyBeginner,
			Tags:        pq.StringArray{"scholarship", "merit"},
			ApplyURL:    "https://scholarships.gov.in",
		},
	}
}
