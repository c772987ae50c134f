package normalize

import (
	"strings"

	"github.com/lighthouse-iam/uar-engine/internal/columnmap"
	"github.com/lighthouse-iam/uar-engine/internal/model"
)

// SoTRecord builds a canonical identity from one mapped RawRow, per spec
// §4.4.2.
func SoTRecord(row model.RawRow, userMap *model.ColumnMap) model.SoTRecord {
	fields := columnmap.Apply(row, userMap)

	email := strings.ToLower(strings.TrimSpace(fields[columnmap.FieldEmail]))
	employeeID := strings.TrimSpace(fields[columnmap.FieldEmployeeID])
	displayName := strings.TrimSpace(fields[columnmap.FieldDisplayName])

	canonicalID := email
	if canonicalID == "" {
		canonicalID = employeeID
	}

	return model.SoTRecord{
		CanonicalID:      canonicalID,
		EmployeeID:       employeeID,
		DisplayName:      displayName,
		Email:            email,
		Department:       strings.TrimSpace(fields[columnmap.FieldDepartment]),
		Manager:          strings.TrimSpace(fields[columnmap.FieldManager]),
		EmploymentStatus: strings.ToLower(strings.TrimSpace(fields[columnmap.FieldEmploymentStatus])),
		NormalizedName:   Name(displayName),
		AdminInfo:        columnmap.AdminInfo(row),
		RawHeaderOrder:   row.Headers,
	}
}

// SatelliteRecord builds an observed-access record from one mapped RawRow
// and the caller-supplied system label, per spec §4.4.3.
func SatelliteRecord(row model.RawRow, userMap *model.ColumnMap, sourceFile string, rowWarnings []string) model.SatelliteRecord {
	fields := columnmap.Apply(row, userMap)

	role := strings.TrimSpace(fields[columnmap.FieldRole])
	admin := columnmap.AdminInfo(row)
	switch {
	case role == "":
		role = admin
	case admin != "":
		role = role + "; " + admin
	}

	accountStatus := fields[columnmap.FieldAccountStatus]
	if accountStatus == "" {
		// Satellite exports commonly reuse the employment-status header for
		// "account enabled/disabled"; fall back to it when present and the
		// column map didn't resolve a dedicated accountStatus field.
		accountStatus = fields[columnmap.FieldEmploymentStatus]
	}

	return model.SatelliteRecord{
		Email:         strings.ToLower(strings.TrimSpace(fields[columnmap.FieldEmail])),
		UserID:        strings.TrimSpace(fields[columnmap.FieldUserID]),
		DisplayName:   strings.TrimSpace(fields[columnmap.FieldDisplayName]),
		Department:    strings.TrimSpace(fields[columnmap.FieldDepartment]),
		Manager:       strings.TrimSpace(fields[columnmap.FieldManager]),
		Role:          role,
		Entitlement:   strings.TrimSpace(fields[columnmap.FieldEntitlement]),
		LastLogin:     strings.TrimSpace(fields[columnmap.FieldLastLogin]),
		AccountStatus: strings.ToLower(strings.TrimSpace(accountStatus)),
		SourceFile:    sourceFile,
		SourceRow:     row.RowNumber,
		RowWarnings:   rowWarnings,
	}
}
