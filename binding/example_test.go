package binding_test

import (
	"fmt"

	"github.com/c360/streambind/binding"
)

type todo struct {
	Description string `json:"description"`
	IsDone      bool   `json:"is_done"`
}

func Example() {
	handler := binding.NewHandler[string, todo]("todo")

	// Seed from an initial-load snapshot.
	snapshot := []byte(`{"stream":"todo","payload":[` +
		`{"model":"todo","data":{"description":"a","is_done":false},"pk":"1"},` +
		`{"model":"todo","data":{"description":"b","is_done":true},"pk":"2"}]}`)
	col := binding.ApplyInitial(binding.NewInitialHandler[string, todo]("todo"), snapshot)

	// Apply incremental events as the server pushes them.
	col = binding.ApplyEvent(handler, []byte(
		`{"stream":"todo","payload":{"model":"todo","data":{"description":"c","is_done":false},"pk":"3","action":"create"}}`), col)
	col = binding.ApplyEvent(handler, []byte(
		`{"stream":"todo","payload":{"model":"todo","pk":"2","action":"delete"}}`), col)

	for _, entry := range col {
		fmt.Println(entry.Key, entry.Instance.Description)
	}
	// Output:
	// 3 c
	// 1 a
}

func ExampleBuildCreateMessage() {
	handler := binding.NewHandler[string, todo]("todo")

	msg, _ := binding.BuildCreateMessage(handler, todo{Description: "x", IsDone: false})
	fmt.Println(string(msg))
	// Output:
	// {"stream":"todo","payload":{"action":"create","data":{"description":"x","is_done":false}}}
}
