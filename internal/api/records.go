package api

import "fmt"

// SearchRecords returns records matching query. An empty query lists all.
func (c *Client) SearchRecords(query string) ([]Record, error) {
	data, err := c.get(buildQuery("/products/", QueryParams{"q": query}))
	if err != nil {
		return nil, err
	}
	return decodeList[Record](data)
}

// GetRecord fetches a single record by id.
func (c *Client) GetRecord(id int) (*Record, error) {
	data, err := c.get(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return nil, err
	}
	return decodeOne[Record](data)
}

// CreateRecord inserts a new record. The service assigns the SKU.
func (c *Client) CreateRecord(input RecordInput) (*Record, error) {
	data, err := c.post("/products/", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Record](data)
}

// UpdateRecord replaces the editable fields of an existing record.
func (c *Client) UpdateRecord(id int, input RecordInput) (*Record, error) {
	data, err := c.put(fmt.Sprintf("/products/%d", id), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Record](data)
}

// DeleteRecord removes a record.
func (c *Client) DeleteRecord(id int) error {
	return c.del(fmt.Sprintf("/products/%d", id), requestOpts{})
}
