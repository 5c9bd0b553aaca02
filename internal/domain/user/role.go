// internal/domain/user/role.go
package user

import "strings"

// Role mirrors the role names shown in the app's user management screen.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleKetuaLPM Role = "Ketua LPM"
	RoleRektor   Role = "Rektor"
	RoleDekan    Role = "Dekan"
	RoleKaprodi  Role = "Kaprodi"
	RoleAuditee  Role = "Auditee"
)

// IsValidRole checks if r is within the allowed roles.
func IsValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleKetuaLPM, RoleRektor, RoleDekan, RoleKaprodi, RoleAuditee:
		return true
	default:
		return false
	}
}

// Capability strings stored on user documents and checked by the app.
const (
	PermManageUsers      = "manage_users"
	PermManageIndicators = "manage_indicators"
	PermManageMonev      = "manage_monev"
	PermViewAllReports   = "view_all_reports"
	PermConductMonev     = "conduct_monev"
	PermViewOwnReports   = "view_own_reports"
	PermManageSettings   = "manage_settings"
	PermExportPDF        = "export_pdf"
)

// fullPermissions is the complete capability set granted to Admin and
// Ketua LPM.
var fullPermissions = []string{
	PermManageUsers,
	PermManageIndicators,
	PermManageMonev,
	PermViewAllReports,
	PermConductMonev,
	PermViewOwnReports,
	PermManageSettings,
	PermExportPDF,
}

// rolePolicy is one row of the email-keyword role table.
type rolePolicy struct {
	keyword     string
	role        Role
	permissions []string
}

// rolePolicies is evaluated top-to-bottom; the first keyword contained in
// the lowercased email wins. Order matters: "rektor.admin@..." must resolve
// to Admin, so "admin" sits above "rektor".
var rolePolicies = []rolePolicy{
	{"admin", RoleAdmin, fullPermissions},
	{"lpm", RoleKetuaLPM, fullPermissions},
	{"rektor", RoleRektor, []string{PermConductMonev, PermViewAllReports, PermViewOwnReports, PermExportPDF}},
	{"dekan", RoleDekan, []string{PermConductMonev, PermViewOwnReports, PermExportPDF}},
	{"kaprodi", RoleKaprodi, []string{PermConductMonev, PermViewOwnReports, PermExportPDF}},
}

// defaultPolicy applies when no keyword matches.
var defaultPolicy = rolePolicy{"", RoleAuditee, []string{PermViewOwnReports}}

// AssignRole derives the role and capability set for an account email.
// Pure function: case-insensitive substring match over the ordered policy
// table, no normalization beyond lowercasing. The returned slice is a copy;
// callers may mutate it freely.
func AssignRole(email string) (Role, []string) {
	lower := strings.ToLower(email)
	for _, p := range rolePolicies {
		if strings.Contains(lower, p.keyword) {
			return p.role, append([]string(nil), p.permissions...)
		}
	}
	return defaultPolicy.role, append([]string(nil), defaultPolicy.permissions...)
}
