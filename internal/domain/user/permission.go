package user

// Permission names an action a role may perform. Every protected route
// consults HasPermission through a single middleware so the role rules
// live in one place instead of being repeated per page.
type Permission string

const (
	PermManageEmployees  Permission = "employees:manage"
	PermViewEmployees    Permission = "employees:view"
	PermManageContracts  Permission = "contracts:manage"
	PermManageSanctions  Permission = "sanctions:manage"
	PermManageIncidents  Permission = "incidents:manage"
	PermManageLoans      Permission = "loans:manage"
	PermViewLoans        Permission = "loans:view"
	PermManageInventory  Permission = "inventory:manage"
	PermManageProducts   Permission = "products:manage"
	PermManageShifts     Permission = "shifts:manage"
	PermApproveShifts    Permission = "shifts:approve"
	PermViewShifts       Permission = "shifts:view"
	PermViewIncidents    Permission = "incidents:view"
	PermRecordAttendance Permission = "attendance:record"
	PermManageAttendance Permission = "attendance:manage"
	PermImportAttendance Permission = "attendance:import"
	PermGeneratePayroll  Permission = "payroll:generate"
	PermViewPayroll      Permission = "payroll:view"
	PermManageMasterData Permission = "master:manage"
	PermViewFinance      Permission = "finance:view"
	PermViewReports      Permission = "reports:view"
)

var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermManageEmployees, PermViewEmployees,
		PermManageContracts, PermManageSanctions, PermManageIncidents,
		PermManageLoans, PermViewLoans,
		PermManageInventory, PermManageProducts,
		PermManageShifts, PermApproveShifts, PermViewShifts, PermViewIncidents,
		PermRecordAttendance, PermManageAttendance, PermImportAttendance,
		PermGeneratePayroll, PermViewPayroll,
		PermManageMasterData, PermViewFinance, PermViewReports,
	},
	RoleManager: {
		PermViewEmployees,
		PermManageContracts, PermManageSanctions, PermManageIncidents,
		PermManageLoans, PermViewLoans,
		PermManageInventory, PermManageProducts,
		PermManageShifts, PermApproveShifts, PermViewShifts, PermViewIncidents,
		PermRecordAttendance, PermManageAttendance, PermImportAttendance,
		PermViewPayroll, PermViewFinance, PermViewReports,
	},
	// Employees act on their own records only: the services compare the
	// target employee against the token's employee_id claim.
	RoleEmployee: {
		PermRecordAttendance, PermViewShifts, PermViewIncidents,
	},
}

// HasPermission reports whether the role is allowed to perform the action.
func HasPermission(role Role, permission Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
