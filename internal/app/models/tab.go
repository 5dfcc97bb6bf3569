package models

import "fmt"

type Tab string

const (
	TabReservations Tab = "reservations"
	TabRecords      Tab = "records"
	TabBills        Tab = "bills"
)

func ParseTab(value string) (Tab, error) {
	switch tab := Tab(value); tab {
	case TabReservations, TabRecords, TabBills:
		return tab, nil
	}
	return "", fmt.Errorf("unknown tab %q", value)
}
