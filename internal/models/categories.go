package models

// Category slugs form a closed taxonomy. The enrichment model must answer
// with one of these; anything else is mapped to CategoryUncategorized.
const (
	CategoryTravel               = "travel"
	CategoryMeals                = "meals"
	CategoryOfficeSupplies       = "office_supplies"
	CategorySoftware             = "software"
	CategoryRent                 = "rent"
	CategoryUtilities            = "utilities"
	CategoryEquipment            = "equipment"
	CategoryInternetAndTelephone = "internet_and_telephone"
	CategoryFacilitiesExpenses   = "facilities_expenses"
	CategoryMarketing            = "marketing"
	CategoryProfessionalServices = "professional_services"
	CategoryInsurance            = "insurance"
	CategoryTaxes                = "taxes"
	CategorySalary               = "salary"
	CategoryBenefits             = "benefits"
	CategoryFees                 = "fees"
	CategoryVehicle              = "vehicle"
	CategoryTraining             = "training"
	CategoryTransfer             = "transfer"
	CategoryIncome               = "income"
	CategoryOther                = "other"

	// CategoryUncategorized doubles as the "do not reprocess" sentinel: once
	// set, the transaction is never resubmitted to the model.
	CategoryUncategorized = "uncategorized"
)

// Category pairs a taxonomy slug with its display label and a short hint the
// prompt builder embeds as classification guidance.
type Category struct {
	Slug  string `yaml:"slug"`
	Label string `yaml:"label"`
	Hint  string `yaml:"hint,omitempty"`
}

// DefaultCategories is the built-in taxonomy, used when no override file is
// configured. Order is stable so prompts stay deterministic.
func DefaultCategories() []Category {
	return []Category{
		{Slug: CategoryTravel, Label: "Travel", Hint: "flights, hotels, taxis, mileage"},
		{Slug: CategoryMeals, Label: "Meals", Hint: "restaurants, catering, business lunches"},
		{Slug: CategoryOfficeSupplies, Label: "Office Supplies", Hint: "stationery, small consumables"},
		{Slug: CategorySoftware, Label: "Software", Hint: "licenses, SaaS subscriptions, cloud services"},
		{Slug: CategoryRent, Label: "Rent", Hint: "office or warehouse lease payments"},
		{Slug: CategoryUtilities, Label: "Utilities", Hint: "electricity, water, heating"},
		{Slug: CategoryEquipment, Label: "Equipment", Hint: "hardware, machines, furniture"},
		{Slug: CategoryInternetAndTelephone, Label: "Internet & Telephone", Hint: "ISP, mobile and landline bills"},
		{Slug: CategoryFacilitiesExpenses, Label: "Facilities Expenses", Hint: "cleaning, maintenance, security"},
		{Slug: CategoryMarketing, Label: "Marketing", Hint: "ads, sponsorships, promotional material"},
		{Slug: CategoryProfessionalServices, Label: "Professional Services", Hint: "legal, accounting, consulting"},
		{Slug: CategoryInsurance, Label: "Insurance", Hint: "liability, property, health premiums"},
		{Slug: CategoryTaxes, Label: "Taxes", Hint: "VAT payments, corporate tax, duties"},
		{Slug: CategorySalary, Label: "Salary", Hint: "payroll and wages"},
		{Slug: CategoryBenefits, Label: "Benefits", Hint: "pension contributions, perks"},
		{Slug: CategoryFees, Label: "Fees", Hint: "bank charges, transaction fees"},
		{Slug: CategoryVehicle, Label: "Vehicle", Hint: "fuel, leasing, repairs, parking"},
		{Slug: CategoryTraining, Label: "Training", Hint: "courses, conferences, certifications"},
		{Slug: CategoryTransfer, Label: "Transfer", Hint: "internal account movements"},
		{Slug: CategoryIncome, Label: "Income", Hint: "customer payments received"},
		{Slug: CategoryOther, Label: "Other", Hint: "clearly identified but fits no category"},
		{Slug: CategoryUncategorized, Label: "Uncategorized", Hint: "cannot be determined with confidence"},
	}
}

// ValidCategorySlug reports whether slug belongs to the closed taxonomy.
func ValidCategorySlug(slug string) bool {
	for _, c := range DefaultCategories() {
		if c.Slug == slug {
			return true
		}
	}
	return false
}
