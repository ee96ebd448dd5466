package constants

const ApiBasePath = "/api/v1"
const RulesApiPath = "rules"
const ConflictMatrixApiPath = "conflict-matrix"
const SpendRecordsApiPath = "spend-records"
const AnalysesApiPath = "analyses"

type contextKey string

const OrgContextKey contextKey = "org"
const TraceIDContextKey contextKey = "trace_id"

const DefaultQueueSize = 100

// Rule categories drive evaluator dispatch. A rule with an unknown category is
// never evaluated.
const (
	CategorySpendConcentration = "spend_concentration"
	CategorySupplierRisk       = "supplier_risk"
	CategoryCompliance         = "compliance"
	CategoryCostOptimization   = "cost_optimization"
)

// AllowedRuleCategories defines the valid set of rule categories.
var AllowedRuleCategories = map[string]bool{
	CategorySpendConcentration: true,
	CategorySupplierRisk:       true,
	CategoryCompliance:         true,
	CategoryCostOptimization:   true,
}

const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

var AllowedSeverities = map[string]bool{
	SeverityCritical: true,
	SeverityHigh:     true,
	SeverityMedium:   true,
	SeverityLow:      true,
}

var AllowedFieldsForRulePatch = map[string]bool{
	"is_active": true,
	"priority":  true,
	"rule_name": true,
	"threshold": true,
}

// Resource names used for Location headers on create responses.
const (
	RuleResource           = "rules"
	AnalysisReportResource = "analyses"
)

// Required columns of a spend record import file.
var SpendImportColumns = []string{"supplier", "category", "amount", "invoice_date"}
