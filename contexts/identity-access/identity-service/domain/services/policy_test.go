package services

import (
	"testing"

	"vyaparkendra/contexts/identity-access/identity-service/domain/entities"
)

func TestGrantsAreClosedPerRole(t *testing.T) {
	cases := []struct {
		role       entities.Role
		capability entities.Capability
		want       bool
	}{
		{entities.RoleAdmin, entities.CapManageCatalog, true},
		{entities.RoleAdmin, entities.CapWorkRequests, false},
		{entities.RoleMitra, entities.CapWorkRequests, true},
		{entities.RoleMitra, entities.CapViewAuditLogs, false},
		{entities.RoleMSME, entities.CapCheckCreditScore, true},
		{entities.RoleMSME, entities.CapViewWallet, false},
		{entities.RoleNBFC, entities.CapReviewLoans, true},
		{entities.RoleGovt, entities.CapViewComplianceLogs, true},
		{entities.RoleGovt, entities.CapManageCatalog, false},
		{entities.RoleTech, entities.CapViewPlatformRollup, true},
		{entities.Role("superuser"), entities.CapManageCatalog, false},
	}

	for _, tc := range cases {
		if got := Allows(tc.role, tc.capability); got != tc.want {
			t.Errorf("Allows(%s, %s) = %v, want %v", tc.role, tc.capability, got, tc.want)
		}
	}
}
