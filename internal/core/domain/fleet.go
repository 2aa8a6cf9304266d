package domain

// Tariff is a priced service class managed through the admin endpoint.
type Tariff struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Description   *string  `json:"description,omitempty"`
	BasePrice     Amount   `json:"base_price"`
	PricePerKm    *Amount  `json:"price_per_km,omitempty"`
	MaxPassengers int      `json:"max_passengers"`
	Features      []string `json:"features"`
	IsActive      bool     `json:"is_active"`
	CreatedAt     string   `json:"created_at,omitempty"`
	UpdatedAt     string   `json:"updated_at,omitempty"`
}

type TariffList struct {
	Tariffs []Tariff `json:"tariffs"`
}

// TariffUpdate is a partial tariff write; nil fields are left untouched.
// It doubles as the create payload, in which case name, category,
// base_price and max_passengers are expected by the server.
type TariffUpdate struct {
	Name          *string   `json:"name,omitempty"`
	Category      *string   `json:"category,omitempty"`
	Description   *string   `json:"description,omitempty"`
	BasePrice     *Amount   `json:"base_price,omitempty"`
	PricePerKm    *Amount   `json:"price_per_km,omitempty"`
	MaxPassengers *int      `json:"max_passengers,omitempty"`
	Features      *[]string `json:"features,omitempty"`
	IsActive      *bool     `json:"is_active,omitempty"`
}

// Vehicle is a fleet car.
type Vehicle struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Model     string   `json:"model"`
	Category  string   `json:"category"`
	Seats     int      `json:"seats"`
	ImageURL  *string  `json:"image_url,omitempty"`
	Features  []string `json:"features"`
	IsActive  bool     `json:"is_active"`
	CreatedAt string   `json:"created_at,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

type VehicleList struct {
	Vehicles []Vehicle `json:"vehicles"`
}

// VehicleUpdate is a partial vehicle write.
type VehicleUpdate struct {
	Name     *string   `json:"name,omitempty"`
	Model    *string   `json:"model,omitempty"`
	Category *string   `json:"category,omitempty"`
	Seats    *int      `json:"seats,omitempty"`
	ImageURL *string   `json:"image_url,omitempty"`
	Features *[]string `json:"features,omitempty"`
	IsActive *bool     `json:"is_active,omitempty"`
}

// Advertisement is a promo block shown on the landing page.
type Advertisement struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Content      *string `json:"content,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	LinkURL      *string `json:"link_url,omitempty"`
	Position     *string `json:"position,omitempty"`
	IsActive     bool    `json:"is_active"`
	DisplayOrder int     `json:"display_order"`
	CreatedAt    string  `json:"created_at,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

type AdvertisementList struct {
	Advertisements []Advertisement `json:"advertisements"`
}

type AdvertisementUpdate struct {
	Title        *string `json:"title,omitempty"`
	Content      *string `json:"content,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	LinkURL      *string `json:"link_url,omitempty"`
	Position     *string `json:"position,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}
