package models

// Room is a fixed bookable meeting room
type Room struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Rooms is the static set of bookable rooms. The backend knows the same
// three rooms by the same ids.
var Rooms = []Room{
	{ID: 1, Name: "PSK Production"},
	{ID: 2, Name: "SPB Office"},
	{ID: 3, Name: "MSK Office"},
}

// RoomByID resolves a room by its id, nil when unknown
func RoomByID(id int) *Room {
	for i := range Rooms {
		if Rooms[i].ID == id {
			return &Rooms[i]
		}
	}
	return nil
}

// RoomName returns the room name for display, falling back to a
// placeholder for ids the client does not know
func RoomName(id int) string {
	if r := RoomByID(id); r != nil {
		return r.Name
	}
	return "Unknown room"
}
