package routing

import (
	"fmt"

	"github.com/atlanticdynamic/greeter/internal/fancy"
)

// String renders the table as a tree, one branch per route.
func (t *Table) String() string {
	tree := fancy.Tree()
	tree.Root(fancy.RootStyle.Render(fmt.Sprintf("Routes (%d)", t.Len())))

	for _, route := range t.Routes() {
		branch := fancy.Tree().Root(fancy.RouteText(route.Method + " " + route.Path))
		branch.Child("App: " + fancy.AppText(route.ID))
		tree.Child(branch)
	}
	tree.Child(fancy.InfoStyle.Render("anything else -> 404 Not Found"))

	return tree.String()
}
