package openapi

// NewDocument describes every route the router mounts. Keep this in
// step with internal/wire when routes change.
func NewDocument(serverURL string) *Document {
	bearer := []map[string][]string{{"bearerAuth": {}}}

	doc := &Document{
		OpenAPI: "3.0.3",
		Info: Info{
			Title:       "Ticket Booking API",
			Description: "Event ticket booking backend with sessions, payments and notifications.",
			Version:     "1.0.0",
		},
		Paths: map[string]PathItem{},
		Components: Components{
			Schemas: componentSchemas(),
			SecuritySchemes: map[string]SecurityScheme{
				"bearerAuth": {
					Type:        "http",
					Scheme:      "bearer",
					Description: "Session token returned by login or register.",
				},
			},
		},
		Tags: []Tag{
			{Name: "auth", Description: "Registration, login and email verification"},
			{Name: "users", Description: "Profile management"},
			{Name: "events", Description: "Event catalogue"},
			{Name: "bookings", Description: "Ticket bookings"},
			{Name: "payments", Description: "Payments and payment methods"},
			{Name: "notifications", Description: "User notifications"},
			{Name: "admin", Description: "Administration"},
		},
	}

	if serverURL != "" {
		doc.Servers = []Server{{URL: serverURL}}
	}

	envelope := func() map[string]Response {
		return map[string]Response{
			"200": {
				Description: "Success",
				Content: map[string]MediaType{
					"application/json": {Schema: &Schema{Ref: "#/components/schemas/Envelope"}},
				},
			},
		}
	}
	created := func() map[string]Response {
		return map[string]Response{
			"201": {
				Description: "Created",
				Content: map[string]MediaType{
					"application/json": {Schema: &Schema{Ref: "#/components/schemas/Envelope"}},
				},
			},
		}
	}
	body := func(ref string) *RequestBody {
		return &RequestBody{
			Required: true,
			Content: map[string]MediaType{
				"application/json": {Schema: &Schema{Ref: ref}},
			},
		}
	}
	idParam := func(name, description string) Parameter {
		return Parameter{
			Name:        name,
			In:          "path",
			Description: description,
			Required:    true,
			Schema:      &Schema{Type: "string", Format: "uuid"},
		}
	}
	pageParams := func() []Parameter {
		return []Parameter{
			{Name: "page", In: "query", Schema: &Schema{Type: "integer", Default: 1}},
			{Name: "per_page", In: "query", Schema: &Schema{Type: "integer", Default: 20}},
		}
	}
	statusParam := Parameter{
		Name:   "status",
		In:     "query",
		Schema: &Schema{Type: "string", Enum: []string{"pending", "confirmed", "cancelled", "expired"}},
	}

	doc.Paths["/health"] = PathItem{
		Get: &Operation{
			Summary:     "Health check",
			OperationID: "healthCheck",
			Responses:   map[string]Response{"200": {Description: "Service is up"}},
		},
	}
	doc.Paths["/openapi.json"] = PathItem{
		Get: &Operation{
			Summary:     "This document",
			OperationID: "getOpenAPIDocument",
			Responses:   map[string]Response{"200": {Description: "OpenAPI document"}},
		},
	}

	doc.Paths["/api/register"] = PathItem{
		Post: &Operation{
			Summary:     "Register a new account",
			OperationID: "register",
			Tags:        []string{"auth"},
			RequestBody: body("#/components/schemas/RegisterRequest"),
			Responses:   created(),
		},
	}
	doc.Paths["/api/login"] = PathItem{
		Post: &Operation{
			Summary:     "Log in and obtain a session token",
			OperationID: "login",
			Tags:        []string{"auth"},
			RequestBody: body("#/components/schemas/LoginRequest"),
			Responses:   envelope(),
		},
	}
	doc.Paths["/api/logout"] = PathItem{
		Post: &Operation{
			Summary:     "Revoke the current session",
			OperationID: "logout",
			Tags:        []string{"auth"},
			Security:    bearer,
			Responses:   envelope(),
		},
	}
	doc.Paths["/api/send-otp"] = PathItem{
		Post: &Operation{
			Summary:     "Request a one-time code",
			OperationID: "sendOTP",
			Tags:        []string{"auth"},
			RequestBody: body("#/components/schemas/SendOTPRequest"),
			Responses:   envelope(),
		},
	}
	doc.Paths["/api/verify-email"] = PathItem{
		Post: &Operation{
			Summary:     "Verify email with a one-time code",
			OperationID: "verifyEmail",
			Tags:        []string{"auth"},
			RequestBody: body("#/components/schemas/VerifyEmailRequest"),
			Responses:   envelope(),
		},
	}

	doc.Paths["/api/user/profile"] = PathItem{
		Get: &Operation{
			Summary:     "Get own profile",
			OperationID: "getProfile",
			Tags:        []string{"users"},
			Security:    bearer,
			Responses:   envelope(),
		},
		Put: &Operation{
			Summary:     "Update own profile",
			OperationID: "updateProfile",
			Tags:        []string{"users"},
			Security:    bearer,
			RequestBody: body("#/components/schemas/UpdateProfileRequest"),
			Responses:   envelope(),
		},
	}

	doc.Paths["/api/events"] = PathItem{
		Get: &Operation{
			Summary:     "List events",
			OperationID: "listEvents",
			Tags:        []string{"events"},
			Parameters:  pageParams(),
			Responses:   envelope(),
		},
	}
	doc.Paths["/api/events/{id}"] = PathItem{
		Get: &Operation{
			Summary:     "Get one event",
			OperationID: "getEvent",
			Tags:        []string{"events"},
			Parameters:  []Parameter{idParam("id", "Event ID")},
			Responses:   envelope(),
		},
	}

	doc.Paths["/api/booking"] = PathItem{
		Post: &Operation{
			Summary:     "Create a booking",
			OperationID: "createBooking",
			Tags:        []string{"bookings"},
			Security:    bearer,
			Parameters: []Parameter{{
				Name:        "Idempotency-Key",
				In:          "header",
				Description: "Repeating a key replays the original booking instead of creating a new one.",
				Schema:      &Schema{Type: "string"},
			}},
			RequestBody: body("#/components/schemas/CreateBookingRequest"),
			Responses:   created(),
		},
	}
	doc.Paths["/api/user/bookings"] = PathItem{
		Get: &Operation{
			Summary:     "List own bookings",
			OperationID: "listUserBookings",
			Tags:        []string{"bookings"},
			Security:    bearer,
			Parameters:  append(pageParams(), statusParam),
			Responses:   envelope(),
		},
	}
	doc.Paths["/api/bookings/{id}"] = PathItem{
		Get: &Operation{
			Summary:     "Get one of your bookings",
			OperationID: "getBooking",
			Tags:        []string{"bookings"},
			Security:    bearer,
			Parameters:  []Parameter{idParam("id", "Booking ID")},
			Responses:   envelope(),
		},
	}
	doc.Paths["/api/bookings/{id}/cancel"] = PathItem{
		Put: &Operation{
			Summary:     "Cancel one of your bookings",
			OperationID: "cancelBooking",
			Tags:        []string{"bookings"},
			Security:    bearer,
			Parameters:  []Parameter{idParam("id", "Booking ID")},
			Responses:   envelope(),
		},
	}

	doc.Paths["/api/pay"] = PathItem{
		Post: &Operation{
			Summary:     "Pay for a pending booking",
			OperationID: "processPayment",
			Tags:        []string{"payments"},
			Security:    bearer,
			RequestBody: body("#/components/schemas/ProcessPaymentRequest"),
			Responses:   created(),
		},
	}
	doc.Paths["/api/payments/{id}"] = PathItem{
		Get: &Operation{
			Summary:     "Get a payment",
			OperationID: "getPayment",
			Tags:        []string{"payments"},
			Security:    bearer,
			Parameters:  []Parameter{idParam("id", "Payment ID")},
			Responses:   envelope(),
		},
	}
	doc.Paths["/api/payment-methods"] = PathItem{
		Get: &Operation{
			Summary:     "List active payment methods",
			OperationID: "listPaymentMethods",
			Tags:        []string{"payments"},
			Responses:   envelope(),
		},
	}

	doc.Paths["/api/user/notifications"] = PathItem{
		Get: &Operation{
			Summary:     "List own notifications",
			OperationID: "listNotifications",
			Tags:        []string{"notifications"},
			Security:    bearer,
			Parameters: append(pageParams(), Parameter{
				Name:   "unread",
				In:     "query",
				Schema: &Schema{Type: "boolean", Default: false},
			}),
			Responses: envelope(),
		},
	}
	doc.Paths["/api/user/notifications/{id}/read"] = PathItem{
		Put: &Operation{
			Summary:     "Mark a notification read",
			OperationID: "markNotificationRead",
			Tags:        []string{"notifications"},
			Security:    bearer,
			Parameters:  []Parameter{idParam("id", "Notification ID")},
			Responses:   envelope(),
		},
	}
	doc.Paths["/api/user/notifications/read-all"] = PathItem{
		Put: &Operation{
			Summary:     "Mark all notifications read",
			OperationID: "markAllNotificationsRead",
			Tags:        []string{"notifications"},
			Security:    bearer,
			Responses:   envelope(),
		},
	}

	doc.Paths["/api/admin/users"] = PathItem{
		Get: &Operation{
			Summary:     "List users",
			OperationID: "adminListUsers",
			Tags:        []string{"admin"},
			Security:    bearer,
			Parameters:  pageParams(),
			Responses:   envelope(),
		},
	}
	doc.Paths["/api/admin/users/{id}"] = PathItem{
		Delete: &Operation{
			Summary:     "Delete a user",
			OperationID: "adminDeleteUser",
			Tags:        []string{"admin"},
			Security:    bearer,
			Parameters:  []Parameter{idParam("id", "User ID")},
			Responses:   envelope(),
		},
	}
	doc.Paths["/api/admin/bookings"] = PathItem{
		Get: &Operation{
			Summary:     "List all bookings",
			OperationID: "adminListBookings",
			Tags:        []string{"admin"},
			Security:    bearer,
			Parameters:  append(pageParams(), statusParam),
			Responses:   envelope(),
		},
	}
	doc.Paths["/api/admin/bookings/{id}"] = PathItem{
		Get: &Operation{
			Summary:     "Get any booking",
			OperationID: "adminGetBooking",
			Tags:        []string{"admin"},
			Security:    bearer,
			Parameters:  []Parameter{idParam("id", "Booking ID")},
			Responses:   envelope(),
		},
	}
	doc.Paths["/api/admin/bookings/{id}/cancel"] = PathItem{
		Put: &Operation{
			Summary:     "Cancel any booking",
			OperationID: "adminCancelBooking",
			Tags:        []string{"admin"},
			Security:    bearer,
			Parameters:  []Parameter{idParam("id", "Booking ID")},
			Responses:   envelope(),
		},
	}
	doc.Paths["/api/admin/events"] = PathItem{
		Post: &Operation{
			Summary:     "Create an event",
			OperationID: "adminCreateEvent",
			Tags:        []string{"admin"},
			Security:    bearer,
			RequestBody: body("#/components/schemas/CreateEventRequest"),
			Responses:   created(),
		},
	}
	doc.Paths["/api/admin/events/{id}"] = PathItem{
		Put: &Operation{
			Summary:     "Update an event",
			OperationID: "adminUpdateEvent",
			Tags:        []string{"admin"},
			Security:    bearer,
			Parameters:  []Parameter{idParam("id", "Event ID")},
			RequestBody: body("#/components/schemas/CreateEventRequest"),
			Responses:   envelope(),
		},
		Delete: &Operation{
			Summary:     "Delete an event without bookings",
			OperationID: "adminDeleteEvent",
			Tags:        []string{"admin"},
			Security:    bearer,
			Parameters:  []Parameter{idParam("id", "Event ID")},
			Responses:   envelope(),
		},
	}
	doc.Paths["/api/admin/actions"] = PathItem{
		Get: &Operation{
			Summary:     "List the admin audit trail",
			OperationID: "adminListActions",
			Tags:        []string{"admin"},
			Security:    bearer,
			Parameters:  pageParams(),
			Responses:   envelope(),
		},
		Post: &Operation{
			Summary:     "Record an admin action",
			OperationID: "adminRecordAction",
			Tags:        []string{"admin"},
			Security:    bearer,
			RequestBody: body("#/components/schemas/RecordAdminActionRequest"),
			Responses:   created(),
		},
	}

	return doc
}

func componentSchemas() map[string]*Schema {
	one := float64(1)
	ten := float64(10)

	return map[string]*Schema{
		"Envelope": {
			Type: "object",
			Properties: map[string]*Schema{
				"status":  {Type: "boolean"},
				"message": {Type: "string"},
				"data":    {Nullable: true},
				"errors":  {Nullable: true},
			},
			Required: []string{"status", "message"},
		},
		"RegisterRequest": {
			Type: "object",
			Properties: map[string]*Schema{
				"name":     {Type: "string"},
				"email":    {Type: "string", Format: "email"},
				"password": {Type: "string", Format: "password"},
			},
			Required: []string{"name", "email", "password"},
		},
		"LoginRequest": {
			Type: "object",
			Properties: map[string]*Schema{
				"email":    {Type: "string", Format: "email"},
				"password": {Type: "string", Format: "password"},
			},
			Required: []string{"email", "password"},
		},
		"SendOTPRequest": {
			Type: "object",
			Properties: map[string]*Schema{
				"email": {Type: "string", Format: "email"},
				"type":  {Type: "string", Enum: []string{"email_verification", "password_reset"}},
			},
			Required: []string{"email", "type"},
		},
		"VerifyEmailRequest": {
			Type: "object",
			Properties: map[string]*Schema{
				"email": {Type: "string", Format: "email"},
				"otp":   {Type: "string"},
			},
			Required: []string{"email", "otp"},
		},
		"UpdateProfileRequest": {
			Type: "object",
			Properties: map[string]*Schema{
				"name":     {Type: "string"},
				"password": {Type: "string", Format: "password", Nullable: true},
			},
			Required: []string{"name"},
		},
		"CreateEventRequest": {
			Type: "object",
			Properties: map[string]*Schema{
				"title":       {Type: "string"},
				"venue":       {Type: "string"},
				"description": {Type: "string", Nullable: true},
				"starts_at":   {Type: "string", Format: "date-time"},
				"price":       {Type: "number"},
				"currency":    {Type: "string"},
				"capacity":    {Type: "integer", Minimum: &one},
			},
			Required: []string{"title", "venue", "starts_at", "price", "currency", "capacity"},
		},
		"CreateBookingRequest": {
			Type: "object",
			Properties: map[string]*Schema{
				"event_id":   {Type: "string", Format: "uuid"},
				"seat_label": {Type: "string", Nullable: true},
				"quantity":   {Type: "integer", Minimum: &one, Maximum: &ten},
			},
			Required: []string{"event_id", "quantity"},
		},
		"ProcessPaymentRequest": {
			Type: "object",
			Properties: map[string]*Schema{
				"booking_id":     {Type: "string", Format: "uuid"},
				"payment_method": {Type: "string"},
				"amount":         {Type: "number"},
			},
			Required: []string{"booking_id", "payment_method", "amount"},
		},
		"RecordAdminActionRequest": {
			Type: "object",
			Properties: map[string]*Schema{
				"action":    {Type: "string"},
				"target_id": {Type: "string"},
			},
			Required: []string{"action", "target_id"},
		},
	}
}
