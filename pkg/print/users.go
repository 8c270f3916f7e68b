package print

import (
	"encoding/json"
	"fmt"
	"io"

	usertypes "github.com/replicatedhq/usersvc/pkg/user/types"
)

func Users(out io.Writer, users []usertypes.User, format string) {
	switch format {
	case "json":
		printUsersJSON(out, users)
	default:
		printUsersTable(out, users)
	}
}

func printUsersJSON(out io.Writer, users []usertypes.User) {
	if users == nil {
		users = []usertypes.User{}
	}
	str, _ := json.MarshalIndent(users, "", "    ")
	fmt.Fprintln(out, string(str))
}

func printUsersTable(out io.Writer, users []usertypes.User) {
	w := NewTabWriter(out)
	defer w.Flush()

	fmtColumns := "%d\t%s\t%s\t%d\n"
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", "ID", "NAME", "EMAIL", "AGE")
	for _, u := range users {
		fmt.Fprintf(w, fmtColumns, u.ID, u.Name, u.Email, u.Age)
	}
}
