package columnmap

// Canonical field names produced by column mapping.
const (
	FieldEmail            = "email"
	FieldUserID           = "userId"
	FieldEmployeeID       = "employeeId"
	FieldDisplayName      = "displayName"
	FieldDepartment       = "department"
	FieldManager          = "manager"
	FieldEmploymentStatus = "employmentStatus"
	FieldAccountStatus    = "accountStatus"
	FieldRole             = "role"
	FieldEntitlement      = "entitlement"
	FieldLastLogin        = "lastLogin"
)

// exactAliases maps a normalized header (lowercase, whitespace/underscore/
// hyphen stripped) to a canonical field, generalizing the alias table shape
// from project-jarvis's datanorm.columnAliases to the identity-review
// domain: email/user/employee identifiers, names, org fields, and access
// metadata instead of email-deliverability signals.
var exactAliases = map[string]string{
	// email
	"email":              FieldEmail,
	"mail":               FieldEmail,
	"emailaddress":       FieldEmail,
	"userprincipalname":  FieldEmail,
	"upn":                FieldEmail,
	"workemail":          FieldEmail,
	"primaryemail":       FieldEmail,

	// user id / login
	"userid":         FieldUserID,
	"samaccountname": FieldUserID,
	"login":          FieldUserID,
	"uid":            FieldUserID,
	"username":       FieldUserID,
	"accountname":    FieldUserID,

	// employee id
	"employeeid":     FieldEmployeeID,
	"empid":          FieldEmployeeID,
	"employeenumber": FieldEmployeeID,
	"workerid":       FieldEmployeeID,
	"personnelid":    FieldEmployeeID,

	// display name
	"displayname": FieldDisplayName,
	"fullname":    FieldDisplayName,
	"name":        FieldDisplayName,
	"employeename": FieldDisplayName,

	// org
	"department": FieldDepartment,
	"dept":       FieldDepartment,
	"manager":    FieldManager,
	"reportsto":  FieldManager,
	"managername": FieldManager,

	// status
	"employmentstatus": FieldEmploymentStatus,
	"status":           FieldEmploymentStatus,
	"accountstatus":    FieldAccountStatus,
	"enabled":          FieldAccountStatus,

	// access
	"role":         FieldRole,
	"jobtitle":     FieldRole,
	"title":        FieldRole,
	"entitlement":  FieldEntitlement,
	"accesslevel":  FieldEntitlement,
	"permissions":  FieldEntitlement,
	"memberof":     FieldEntitlement,
	"lastlogin":    FieldLastLogin,
	"lastlogon":    FieldLastLogin,
	"lastactivity": FieldLastLogin,
	"lastsignin":   FieldLastLogin,
}

// substringAliases is ordered most-specific-first; the first canonical
// target not yet assigned wins, per spec §4.3 step 3.
var substringAliases = []struct {
	substr string
	field  string
}{
	{"email", FieldEmail},
	{"mail", FieldEmail},
	{"upn", FieldEmail},
	{"employeeid", FieldEmployeeID},
	{"userid", FieldUserID},
	{"displayname", FieldDisplayName},
	{"fullname", FieldDisplayName},
	{"name", FieldDisplayName},
	{"department", FieldDepartment},
	{"manager", FieldManager},
	{"reportsto", FieldManager},
	{"employmentstatus", FieldEmploymentStatus},
	{"accountstatus", FieldAccountStatus},
	{"status", FieldEmploymentStatus},
	{"entitlement", FieldEntitlement},
	{"accesslevel", FieldEntitlement},
	{"role", FieldRole},
	{"memberof", FieldEntitlement},
	{"lastlogin", FieldLastLogin},
}
