package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Every in-app redirect uses 303 so browsers re-fetch with GET after
// form posts.
func redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}

func pathInt(r *http.Request, key string) (int, bool) {
	value, ok := mux.Vars(r)[key]
	if !ok {
		return 0, false
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func quizPath(number int) string {
	return fmt.Sprintf("/quiz/%d", number)
}

func questionPath(number, index int) string {
	return fmt.Sprintf("/quiz/%d/question/%d", number, index)
}

func resultPath(number int) string {
	return fmt.Sprintf("/quiz/%d/result", number)
}
