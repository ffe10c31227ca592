package question

// fakeResponse is an in-memory response widget.
type fakeResponse struct {
	state     ResponseState
	submitted int
	resets    int
	listeners []func()
}

func newFake(state ResponseState) *fakeResponse {
	return &fakeResponse{state: state}
}

func (f *fakeResponse) State() ResponseState { return f.state }
func (f *fakeResponse) OnChange(fn func())    { f.listeners = append(f.listeners, fn) }
func (f *fakeResponse) SubmitResponse()       { f.submitted++ }

func (f *fakeResponse) Reset() {
	f.resets++
	f.set(ResponseUnanswered)
}

// set changes the state and notifies listeners, like a user edit.
func (f *fakeResponse) set(state ResponseState) {
	if f.state == state {
		return
	}
	f.state = state
	for _, fn := range f.listeners {
		fn()
	}
}

// fakeEnclosure is an ordered list of panel ids.
type fakeEnclosure []string

func (e fakeEnclosure) NextSibling(panelID string) (string, bool) {
	for i, id := range e {
		if id == panelID && i+1 < len(e) {
			return e[i+1], true
		}
	}
	return "", false
}

type fakeContent struct{ offset int }

func (f *fakeContent) ScrollToTop() { f.offset = 0 }
