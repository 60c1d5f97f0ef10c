package atlas

import (
	"strconv"

	"github.com/rohanthewiz/atlas/core/rtr"
	"github.com/rohanthewiz/element"
)

// RouteTable renders registered routes as an HTML table.
type RouteTable struct {
	Routes []rtr.RouteList
	Names  func(pattern string) (string, bool)
}

func (rt RouteTable) Render(b *element.Builder) any {
	b.Table("class", "atlas-routes").R(
		b.Tr().R(
			b.Th().T("Pattern"),
			b.Th().T("Name"),
			b.Th().T("Kind"),
		),
		func() any {
			for _, route := range rt.Routes {
				name := ""
				if rt.Names != nil {
					name, _ = rt.Names(route.Pattern)
				}
				kind := "static"
				if route.Dynamic {
					kind = "dynamic"
				}
				b.Tr().R(
					b.Td().T(route.Pattern),
					b.Td().T(name),
					b.Td().T(kind),
				)
			}
			return nil
		}(),
	)
	return nil
}

// JournalView renders recorded lifecycle events as an HTML table.
type JournalView struct {
	Entries []Entry
}

func (jv JournalView) Render(b *element.Builder) any {
	b.Table("class", "atlas-journal").R(
		b.Tr().R(
			b.Th().T("#"),
			b.Th().T("Event"),
			b.Th().T("From"),
			b.Th().T("To"),
		),
		func() any {
			for i, entry := range jv.Entries {
				from, to := entry.From, entry.To
				if !entry.Info.IsZero() {
					from, to = entry.Previous.Name, entry.Info.Name
				}
				b.Tr("class", entry.Event).R(
					b.Td().T(strconv.Itoa(i+1)),
					b.Td().T(entry.Event),
					b.Td().T(from),
					b.Td().T(to),
				)
			}
			return nil
		}(),
	)
	return nil
}

// inspectionPage lays out the route table and the journal.
type inspectionPage struct {
	Title   string
	Routes  RouteTable
	Journal JournalView
}

func (p inspectionPage) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T(p.Title),
			b.Style().T(`
				body { font-family: sans-serif; margin: 20px; }
				table { border-collapse: collapse; margin-bottom: 20px; }
				th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
				tr.didNotNavigate { background: #f8d7da; }
				tr.didNavigate { background: #d4edda; }
			`),
		),
		b.Body().R(
			b.H2().T("Routes"),
			element.RenderComponents(b, p.Routes),
			b.H2().T("Lifecycle"),
			element.RenderComponents(b, p.Journal),
		),
	)
	return nil
}

// RenderInspection returns an HTML page listing the routes of r and the events recorded in j.
func RenderInspection(r *Router, j *Journal) string {
	b := element.NewBuilder()
	element.RenderComponents(b, inspectionPage{
		Title:   "atlas inspection",
		Routes:  RouteTable{Routes: r.History().Routes(), Names: r.RouteName},
		Journal: JournalView{Entries: j.Entries()},
	})
	return b.String()
}
