package console

// Modal identifies which modal a page shows. Only one is visible at a time.
type Modal string

const (
	ModalNone   Modal = ""
	ModalCreate Modal = "create"
	ModalEdit   Modal = "edit"
	ModalDelete Modal = "delete"
)

// Open reports whether any modal is visible.
func (m Modal) Open() bool {
	return m != ModalNone
}

// IsForm reports whether the modal renders the entity form.
func (m Modal) IsForm() bool {
	return m == ModalCreate || m == ModalEdit
}
