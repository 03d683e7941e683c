// Package badge maps entity statuses to display labels and colors. Each
// badge kind owns a closed table; an unknown status falls back to the raw
// value with neutral gray styling instead of failing.
package badge

// Kind selects which status table a lookup goes through.
type Kind int

const (
	KindContact Kind = iota
	KindQuote
	KindPriority
	KindNewsletter
)

// Badge is a display label and color pairing.
type Badge struct {
	Label     string `json:"label"`
	Color     string `json:"color"`
	BgClass   string `json:"bg_class"`
	TextClass string `json:"text_class"`
}

var contactBadges = map[string]Badge{
	"new":       {Label: "New", Color: "#3B82F6", BgClass: "bg-blue-100", TextClass: "text-blue-800"},
	"contacted": {Label: "Contacted", Color: "#F59E0B", BgClass: "bg-amber-100", TextClass: "text-amber-800"},
	"quoted":    {Label: "Quoted", Color: "#8B5CF6", BgClass: "bg-purple-100", TextClass: "text-purple-800"},
	"converted": {Label: "Converted", Color: "#10B981", BgClass: "bg-green-100", TextClass: "text-green-800"},
	"closed":    {Label: "Closed", Color: "#6B7280", BgClass: "bg-gray-100", TextClass: "text-gray-800"},
}

var quoteBadges = map[string]Badge{
	"draft":    {Label: "Draft", Color: "#6B7280", BgClass: "bg-gray-100", TextClass: "text-gray-800"},
	"sent":     {Label: "Sent", Color: "#3B82F6", BgClass: "bg-blue-100", TextClass: "text-blue-800"},
	"viewed":   {Label: "Viewed", Color: "#8B5CF6", BgClass: "bg-purple-100", TextClass: "text-purple-800"},
	"accepted": {Label: "Accepted", Color: "#10B981", BgClass: "bg-green-100", TextClass: "text-green-800"},
	"rejected": {Label: "Rejected", Color: "#EF4444", BgClass: "bg-red-100", TextClass: "text-red-800"},
	"expired":  {Label: "Expired", Color: "#6B7280", BgClass: "bg-gray-100", TextClass: "text-gray-800"},
}

var priorityBadges = map[string]Badge{
	"low":    {Label: "Low", Color: "#6B7280", BgClass: "bg-gray-100", TextClass: "text-gray-700"},
	"normal": {Label: "Normal", Color: "#3B82F6", BgClass: "bg-blue-100", TextClass: "text-blue-700"},
	"high":   {Label: "High", Color: "#F59E0B", BgClass: "bg-amber-100", TextClass: "text-amber-700"},
	"urgent": {Label: "Urgent", Color: "#EF4444", BgClass: "bg-red-100", TextClass: "text-red-700"},
}

var newsletterBadges = map[string]Badge{
	"active":       {Label: "Active", Color: "#10B981", BgClass: "bg-green-100", TextClass: "text-green-800"},
	"unsubscribed": {Label: "Unsubscribed", Color: "#6B7280", BgClass: "bg-gray-100", TextClass: "text-gray-800"},
}

var tables = map[Kind]map[string]Badge{
	KindContact:    contactBadges,
	KindQuote:      quoteBadges,
	KindPriority:   priorityBadges,
	KindNewsletter: newsletterBadges,
}

// Resolve looks up the badge for a status within one kind's table. Tables do
// not fall through to each other; a status unknown to the kind gets the raw
// value as label and neutral gray styling.
func Resolve(kind Kind, status string) Badge {
	if table, ok := tables[kind]; ok {
		if b, ok := table[status]; ok {
			return b
		}
	}
	return Badge{Label: status, Color: "#6B7280", BgClass: "bg-gray-100", TextClass: "text-gray-800"}
}
