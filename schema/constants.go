package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of rendered output.
	OutputMode string

	// RotationTier represents an on-call rotation tier.
	RotationTier string

	// DatabaseBackend represents the database backend for the response cache.
	DatabaseBackend string

	// Region represents a public-holiday region.
	Region string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All on-call rotation tiers supported.
const (
	TierL1 RotationTier = "l1"
	TierL2 RotationTier = "l2"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All public-holiday regions tracked in reports. The GB subdivisions are
// listed individually because their bank holidays differ.
const (
	RegionEngland  Region = "ENG"
	RegionScotland Region = "SCT"
	RegionWales    Region = "WLS"
	RegionNIreland Region = "NIR"
	RegionIreland  Region = "IE"
)

// AllRegions lists every region in report order.
var AllRegions = []Region{RegionScotland, RegionEngland, RegionNIreland, RegionWales, RegionIreland}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidRotationTiers lists all valid on-call tiers.
var ValidRotationTiers = map[RotationTier]struct{}{
	TierL1: {},
	TierL2: {},
}

// ValidDatabaseBackends lists all valid cache backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// SprintLengthDays is the fixed calendar length of a sprint.
const SprintLengthDays = 14

// SprintWorkDays is the number of weekdays in a full sprint.
const SprintWorkDays = 10

// RampStepPerSprint is the capacity fraction a ramping member gains with
// every completed sprint since their start date.
const RampStepPerSprint = 0.1
