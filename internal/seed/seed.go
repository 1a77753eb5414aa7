// Package seed provides demo catalog data for running the service
// without a real course export. Enrollment figures are randomized but
// seedable, so tests get deterministic records.
package seed

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/courseplan/courseplan/internal/app/services"
	"github.com/courseplan/courseplan/internal/pkg/tabular"
)

// demoCatalogCSV is a small course export in the same shape real
// uploads arrive in. Capacity/enrolled columns are placeholders; the
// generator below overrides them.
const demoCatalogCSV = `subject,catalog,name,description,meeting time,instructor,room,capacity,enrolled
MATH,UB 121,Calculus I,Limits derivatives and integrals with business applications,MONWED 9:30AM-10:45AM,R. Feldman,GCASL 275,0,0
MULT,UB 100,Business and Its Publics,Discourse and debate on the role of business in society,TUETHU 11:00AM-12:15PM,S. Okafor,KMC 2-60,0,0
CORE,UA 400,Texts and Ideas,Foundational texts of the liberal arts tradition,MW 2:00PM-3:15PM,L. Marchetti,SILV 520,0,0
CORE,UA 500,Cultures and Contexts,Comparative study of world cultures,TR 3:30PM-4:45PM,A. Haddad,SILV 411,0,0
ECON,UB 1,Microeconomics,Price theory consumer choice and market structure,MONWED 8:00AM-9:15AM,D. Park,KMC 4-80,0,0
ECON,UB 2,Macroeconomics,National income growth and monetary policy,TUETHU 9:30AM-10:45AM,D. Park,KMC 4-80,0,0
STAT,UB 103,Statistics for Business Control,Data analysis and statistical inference for decision making,FRI 10:00AM-12:45PM,M. Ivanova,KMC 3-55,0,0
STAT,UB 18,Regression and Forecasting,Regression models and time series forecasting,MW 4:55PM-6:10PM,M. Ivanova,KMC 3-55,0,0
SOMI,UB 65,Social Impact Core,Ethical frameworks for business leadership,THU 6:00PM-8:45PM,J. Whitfield,KMC 5-75,0,0
ACCT,UB 1,Principles of Financial Accounting,Financial statements and the accounting cycle,TUETHU 2:00PM-3:15PM,C. Nakamura,KMC 2-90,0,0`

// RandomEnrollment generates capacity/enrolled pairs from a seeded
// source. A deliberate share of sections comes out full so derived
// CLOSED statuses show up in demo data.
type RandomEnrollment struct {
	rng *rand.Rand
}

// NewRandomEnrollment creates a generator from a seed.
func NewRandomEnrollment(seed int64) *RandomEnrollment {
	return &RandomEnrollment{rng: rand.New(rand.NewSource(seed))}
}

// Enrollment returns a generated capacity/enrolled pair.
func (g *RandomEnrollment) Enrollment() (capacity, enrolled int) {
	capacity = 20 + 5*g.rng.Intn(5) // 20..40
	enrolled = g.rng.Intn(capacity + 5)
	if enrolled > capacity {
		enrolled = capacity
	}
	return capacity, enrolled
}

// LoadDemoCatalog parses the demo export with generated enrollment and
// loads it into the catalog service.
func LoadDemoCatalog(catalogService *services.CatalogService, seed int64, lgr zerolog.Logger) error {
	count, err := catalogService.LoadCourses(demoCatalogCSV, tabular.WithEnrollment(NewRandomEnrollment(seed)))
	if err != nil {
		return err
	}
	lgr.Info().Int("count", count).Msg("Demo catalog loaded")
	return nil
}
