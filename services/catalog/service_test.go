package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookeasy/models"
)

type stubBranchRepo struct {
	visible []models.Branch
}

func (s *stubBranchRepo) GetByID(string) (*models.Branch, error)  { return nil, nil }
func (s *stubBranchRepo) GetAllVisible() ([]models.Branch, error) { return s.visible, nil }

type stubServiceRepo struct {
	byBranch []models.Service
}

func (s *stubServiceRepo) GetByID(string) (*models.Service, error)      { return nil, nil }
func (s *stubServiceRepo) GetByBranch(string) ([]models.Service, error) { return s.byBranch, nil }

type stubStaffRepo struct {
	all       []models.Staff
	byService []models.Staff
}

func (s *stubStaffRepo) GetByID(string) (*models.Staff, error)       { return nil, nil }
func (s *stubStaffRepo) GetByService(string) ([]models.Staff, error) { return s.byService, nil }
func (s *stubStaffRepo) GetAll() ([]models.Staff, error)             { return s.all, nil }

func boolPtr(b bool) *bool { return &b }

func TestListServicesForBranchFiltersUnstaffed(t *testing.T) {
	staffed := models.Service{ID: "svc-1", Name: "Haircut", StaffIDs: []string{"staff-1"}}
	noStaff := models.Service{ID: "svc-2", Name: "Coloring"}
	wrongBranchStaff := models.Service{ID: "svc-3", Name: "Manicure", StaffIDs: []string{"staff-2"}}
	hidden := models.Service{ID: "svc-4", Name: "Pedicure", StaffIDs: []string{"staff-1"}, Visible: boolPtr(false)}
	unavailable := models.Service{ID: "svc-5", Name: "Massage", StaffIDs: []string{"staff-1"}, Available: boolPtr(false)}

	svc := &DefaultCatalogService{
		BranchRepo:  &stubBranchRepo{},
		ServiceRepo: &stubServiceRepo{byBranch: []models.Service{staffed, noStaff, wrongBranchStaff, hidden, unavailable}},
		StaffRepo: &stubStaffRepo{all: []models.Staff{
			{ID: "staff-1", Branches: []string{"branch-1"}, Services: []string{"svc-1", "svc-4", "svc-5"}},
			{ID: "staff-2", Branches: []string{"branch-2"}, Services: []string{"svc-3"}},
		}},
	}

	got, err := svc.ListServicesForBranch("branch-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "svc-1", got[0].ID)
}

func TestListServicesForBranchRequiresAssignment(t *testing.T) {
	// Staff member works at the branch but is not assigned the service
	// in their own services list.
	svc := &DefaultCatalogService{
		BranchRepo:  &stubBranchRepo{},
		ServiceRepo: &stubServiceRepo{byBranch: []models.Service{{ID: "svc-1", StaffIDs: []string{"staff-1"}}}},
		StaffRepo: &stubStaffRepo{all: []models.Staff{
			{ID: "staff-1", Branches: []string{"branch-1"}, Services: []string{"other"}},
		}},
	}

	got, err := svc.ListServicesForBranch("branch-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListStaffForServiceBranchFilter(t *testing.T) {
	svc := &DefaultCatalogService{
		BranchRepo:  &stubBranchRepo{},
		ServiceRepo: &stubServiceRepo{},
		StaffRepo: &stubStaffRepo{byService: []models.Staff{
			{ID: "staff-1", Branches: []string{"branch-1"}},
			{ID: "staff-2", Branches: []string{"branch-2"}},
		}},
	}

	all, err := svc.ListStaffForService("svc-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	atBranch, err := svc.ListStaffForService("svc-1", "branch-2")
	require.NoError(t, err)
	require.Len(t, atBranch, 1)
	assert.Equal(t, "staff-2", atBranch[0].ID)
}

func TestListBranches(t *testing.T) {
	svc := &DefaultCatalogService{
		BranchRepo: &stubBranchRepo{visible: []models.Branch{
			{ID: "branch-1", Name: "Downtown Branch", Online: true, Visible: true},
		}},
		ServiceRepo: &stubServiceRepo{},
		StaffRepo:   &stubStaffRepo{},
	}

	got, err := svc.ListBranches()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Downtown Branch", got[0].Name)
}
