package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/postboard/internal/client/models"
	"github.com/olekukonko/tablewriter"
)

// ownership decides which rows are highlighted as the user's own.
type ownership interface {
	CanModify(ownerID int64) bool
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func ownRow(table *tablewriter.Table, row []string, own bool) {
	if !own {
		table.Append(row)
		return
	}
	style := make([]tablewriter.Colors, len(row))
	for i := range style {
		style[i] = tablewriter.Colors{tablewriter.FgHiGreenColor}
	}
	style[0] = tablewriter.Colors{tablewriter.FgHiGreenColor, tablewriter.Bold}
	table.Rich(row, style)
}

// boardView is what the post listing reads from the board.
type boardView interface {
	ownership
	Posts() []models.Post
	CommentsFor(postID int64) []models.Comment
}

// renderPosts writes one table with each post followed by its comments.
// Rows the user may edit are highlighted.
func renderPosts(w io.Writer, board boardView) {
	posts := board.Posts()
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts yet.")
		return
	}

	table := newTable(w, []string{"ID", "Title", "Description", "Author", "File", "Comments"})
	for _, p := range posts {
		comments := board.CommentsFor(p.ID)
		ownRow(table, []string{
			strconv.FormatInt(p.ID, 10),
			p.Title,
			oneLine(p.Description),
			strconv.FormatInt(p.UserID, 10),
			p.FileURLPath(),
			strconv.Itoa(len(comments)),
		}, board.CanModify(p.UserID))

		for _, c := range comments {
			ownRow(table, []string{
				"",
				"  comment " + strconv.FormatInt(c.ID, 10),
				oneLine(c.Description),
				strconv.FormatInt(c.UserID, 10),
				"",
				"",
			}, board.CanModify(c.UserID))
		}
	}
	table.Render()
}

func renderReport(w io.Writer, rows []models.ReportRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "Nothing to report.")
		return
	}
	table := newTable(w, []string{"ID", "Title", "Comments"})
	for _, r := range rows {
		table.Append([]string{strconv.FormatInt(r.ID, 10), r.Title, strconv.FormatInt(int64(r.CommentCount), 10)})
	}
	table.Render()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
