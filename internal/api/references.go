package api

import "fmt"

// ListReferences returns every reference of the given kind.
func (c *Client) ListReferences(kind RefKind) ([]Reference, error) {
	data, err := c.get("/" + kind.Path())
	if err != nil {
		return nil, err
	}
	return decodeList[Reference](data)
}

// CreateReference inserts a new reference. A duplicate name comes back as
// a conflict.
func (c *Client) CreateReference(kind RefKind, input ReferenceInput) (*Reference, error) {
	data, err := c.post("/"+kind.Path()+"/", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Reference](data)
}

// DeleteReference removes a reference. References still held by a record
// are refused with ErrInUse.
func (c *Client) DeleteReference(kind RefKind, id int) error {
	return c.del(fmt.Sprintf("/%s/%d", kind.Path(), id), requestOpts{refDelete: true})
}
