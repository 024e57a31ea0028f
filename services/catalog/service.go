// Package catalog serves the booking wizard's browse steps: which
// branches are open for online booking, which services a branch offers,
// and which staff members can perform a service.
package catalog

import (
	"fmt"

	branchRepo "bookeasy/database/repository/branch"
	serviceRepo "bookeasy/database/repository/service"
	staffRepo "bookeasy/database/repository/staff"
	"bookeasy/models"
)

// CatalogService defines the wizard's read surface.
type CatalogService interface {
	ListBranches() ([]models.Branch, error)
	ListServicesForBranch(branchID string) ([]models.Service, error)
	ListStaffForService(serviceID, branchID string) ([]models.Staff, error)
}

// DefaultCatalogService is the Mongo-backed implementation.
type DefaultCatalogService struct {
	BranchRepo  branchRepo.BranchRepository
	ServiceRepo serviceRepo.ServiceRepository
	StaffRepo   staffRepo.StaffRepository
}

// ListBranches returns branches accepting online bookings.
func (s *DefaultCatalogService) ListBranches() ([]models.Branch, error) {
	branches, err := s.BranchRepo.GetAllVisible()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return branches, nil
}

// ListServicesForBranch returns the branch's services that a customer
// can actually book: available, visible, and staffed by at least one
// person who both works at the branch and provides the service.
func (s *DefaultCatalogService) ListServicesForBranch(branchID string) ([]models.Service, error) {
	services, err := s.ServiceRepo.GetByBranch(branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services for branch %s: %w", branchID, err)
	}
	allStaff, err := s.StaffRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	staffByID := make(map[string]models.Staff, len(allStaff))
	for _, st := range allStaff {
		staffByID[st.ID] = st
	}

	var bookable []models.Service
	for _, svc := range services {
		if !svc.IsBookable() || len(svc.StaffIDs) == 0 {
			continue
		}
		for _, staffID := range svc.StaffIDs {
			st, ok := staffByID[staffID]
			if ok && st.WorksAtBranch(branchID) && st.ProvidesService(svc.ID) {
				bookable = append(bookable, svc)
				break
			}
		}
	}
	return bookable, nil
}

// ListStaffForService returns staff assigned to the service, narrowed to
// a branch when one is given.
func (s *DefaultCatalogService) ListStaffForService(serviceID, branchID string) ([]models.Staff, error) {
	staff, err := s.StaffRepo.GetByService(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff for service %s: %w", serviceID, err)
	}
	if branchID == "" {
		return staff, nil
	}

	var atBranch []models.Staff
	for _, st := range staff {
		if st.WorksAtBranch(branchID) {
			atBranch = append(atBranch, st)
		}
	}
	return atBranch, nil
}
