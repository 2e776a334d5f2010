package services

import "vyaparkendra/contexts/identity-access/identity-service/domain/entities"

// grants is the closed role -> capability table. It is deliberately a
// literal: authorization changes are code changes, reviewed like any other.
var grants = map[entities.Role][]entities.Capability{
	entities.RoleAdmin: {
		entities.CapManageCatalog,
		entities.CapApproveKYC,
		entities.CapManagePartners,
		entities.CapViewPlatformRollup,
		entities.CapViewAuditLogs,
	},
	entities.RoleMitra: {
		entities.CapBrowseCatalog,
		entities.CapWorkRequests,
		entities.CapViewWallet,
		entities.CapApplyLoans,
		entities.CapUseAdvisory,
	},
	entities.RoleMSME: {
		entities.CapBrowseCatalog,
		entities.CapCheckCreditScore,
		entities.CapUseAdvisory,
	},
	entities.RoleNBFC: {
		entities.CapReviewLoans,
		entities.CapUseAdvisory,
	},
	entities.RoleGovt: {
		entities.CapViewStateAnalytics,
		entities.CapViewComplianceLogs,
	},
	entities.RoleTech: {
		entities.CapViewPlatformRollup,
		entities.CapViewAuditLogs,
	},
}

// Allows reports whether role holds capability.
func Allows(role entities.Role, capability entities.Capability) bool {
	for _, granted := range grants[role] {
		if granted == capability {
			return true
		}
	}
	return false
}
