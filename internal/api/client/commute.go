package client

import "context"

// CommuteResponse is the response of the commute endpoint.
type CommuteResponse struct {
	MinutesTrain   *int   `json:"minutes_train"`
	GareDepart     string `json:"gare_depart"`
	GareParisienne string `json:"gare_parisienne"`
}

// CommuteTime estimates the rail commute from a town or station to a Paris
// terminus. An empty hint keeps the server default terminus.
func (c *Client) CommuteTime(ctx context.Context, villeOuGare, hint string) (*CommuteResponse, error) {
	var resp CommuteResponse
	body := map[string]string{"ville_ou_gare": villeOuGare}
	if hint != "" {
		body["gare_parisienne_hint"] = hint
	}
	if err := c.post(ctx, "/api/v1/commute", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
