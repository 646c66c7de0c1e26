package menu

// Category identifies a rendered menu bucket. The numeric values are the
// parentId values the server sends; everything outside 1-4 (including
// absent or non-numeric) lands in the default single bucket.
type Category int

const (
	CategorySingle       Category = 0
	CategoryPrimary      Category = 1
	CategoryReport       Category = 2
	CategoryOverview     Category = 3
	CategoryConsolidated Category = 4
)

// String returns the category's menu name.
func (c Category) String() string {
	switch c {
	case CategoryPrimary:
		return "primary"
	case CategoryReport:
		return "report"
	case CategoryOverview:
		return "overview"
	case CategoryConsolidated:
		return "consolidated"
	default:
		return "single"
	}
}

// Buckets holds the partitioned link descriptors. Within each bucket the
// input order is preserved.
type Buckets struct {
	Primary      []Link
	Report       []Link
	Overview     []Link
	Consolidated []Link
	Single       []Link
}

// Categorize partitions links into buckets by parentId in a single stable
// pass. The partition is total: every link lands in exactly one bucket.
func Categorize(links []Link) Buckets {
	var b Buckets
	for _, l := range links {
		switch Category(l.Parent) {
		case CategoryPrimary:
			b.Primary = append(b.Primary, l)
		case CategoryReport:
			b.Report = append(b.Report, l)
		case CategoryOverview:
			b.Overview = append(b.Overview, l)
		case CategoryConsolidated:
			b.Consolidated = append(b.Consolidated, l)
		default:
			b.Single = append(b.Single, l)
		}
	}
	return b
}

// ByCategory returns the bucket for c. Unrecognized categories map to the
// default single bucket, mirroring Categorize.
func (b Buckets) ByCategory(c Category) []Link {
	switch c {
	case CategoryPrimary:
		return b.Primary
	case CategoryReport:
		return b.Report
	case CategoryOverview:
		return b.Overview
	case CategoryConsolidated:
		return b.Consolidated
	default:
		return b.Single
	}
}

// Len returns the total number of links across all buckets.
func (b Buckets) Len() int {
	return len(b.Primary) + len(b.Report) + len(b.Overview) + len(b.Consolidated) + len(b.Single)
}
