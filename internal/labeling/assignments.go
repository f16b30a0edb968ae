package labeling

// Assignment is one row of the mapping: image basename and its label.
type Assignment struct {
	Image string
	Label string
}

// Assignments maps image basenames to labels and remembers insertion order.
// Changing the label of an existing entry keeps its position; deleting and
// re-adding moves it to the end.
type Assignments struct {
	order  []string
	labels map[string]string
}

func NewAssignments() *Assignments {
	return &Assignments{
		labels: make(map[string]string),
	}
}

func (a *Assignments) Get(image string) (string, bool) {
	label, ok := a.labels[image]
	return label, ok
}

func (a *Assignments) Set(image, label string) {
	if _, exists := a.labels[image]; !exists {
		a.order = append(a.order, image)
	}
	a.labels[image] = label
}

func (a *Assignments) Delete(image string) {
	if _, exists := a.labels[image]; !exists {
		return
	}
	delete(a.labels, image)
	for i, name := range a.order {
		if name == image {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

func (a *Assignments) Len() int {
	return len(a.order)
}

// Entries returns a snapshot in insertion order.
func (a *Assignments) Entries() []Assignment {
	entries := make([]Assignment, 0, len(a.order))
	for _, name := range a.order {
		entries = append(entries, Assignment{Image: name, Label: a.labels[name]})
	}
	return entries
}

// CountByLabel returns how many images carry each label.
func (a *Assignments) CountByLabel() map[string]int {
	counts := make(map[string]int)
	for _, label := range a.labels {
		counts[label]++
	}
	return counts
}
