package constants

import "fmt"

const (
	RoleAdmin   = "ADMIN"
	RoleStudent = "STUDENT"
	RoleCompany = "COMPANY"
)

// Templates de mensagem de erro por role
const (
	ErrOnlyAdminsCanAccess    = "❌ Apenas administradores podem acessar %s."
	ErrOnlyStudentsCanAccess  = "❌ Apenas estudantes podem acessar %s."
	ErrOnlyCompaniesCanAccess = "❌ Apenas empresas podem acessar %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorCompany(feature string) string {
	return fmt.Sprintf(ErrOnlyCompaniesCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleStudent,
		RoleCompany,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}

	CompanyOnly = []string{
		RoleCompany,
	}

	StudentOrAdmin = []string{
		RoleStudent,
		RoleAdmin,
	}

	CompanyOrAdmin = []string{
		RoleCompany,
		RoleAdmin,
	}
)
