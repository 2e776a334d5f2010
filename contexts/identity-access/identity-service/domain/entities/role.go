package entities

// Role is the closed set of platform stakeholders. Anything outside this
// set is rejected at registration.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleMitra Role = "mitra"
	RoleMSME  Role = "msme"
	RoleNBFC  Role = "nbfc"
	RoleGovt  Role = "govt"
	RoleTech  Role = "tech"
)

func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleAdmin, RoleMitra, RoleMSME, RoleNBFC, RoleGovt, RoleTech:
		return Role(raw), true
	}
	return "", false
}

// Capability names one operation a role may perform. Route guards check
// capabilities, never role strings.
type Capability string

const (
	CapManageCatalog      Capability = "catalog:manage"
	CapBrowseCatalog      Capability = "catalog:browse"
	CapApproveKYC         Capability = "kyc:approve"
	CapWorkRequests       Capability = "requests:work"
	CapViewWallet         Capability = "wallet:view"
	CapApplyLoans         Capability = "loans:apply"
	CapReviewLoans        Capability = "loans:review"
	CapManagePartners     Capability = "partners:manage"
	CapViewPlatformRollup Capability = "analytics:platform"
	CapViewStateAnalytics Capability = "analytics:state"
	CapViewAuditLogs      Capability = "audit:view"
	CapViewComplianceLogs Capability = "compliance:view"
	CapUseAdvisory        Capability = "advisory:use"
	CapCheckCreditScore   Capability = "credit:check"
)
