package service

import (
	"reflect"
	"testing"
)

func TestSortExamDates(t *testing.T) {
	dates := []string{
		"01.01.2024",
		"15.06.2021",
		"30.11.2021",
		"05.03.2023",
	}

	sortExamDates(dates)

	want := []string{"15.06.2021", "30.11.2021", "05.03.2023", "01.01.2024"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("sorted = %v, want %v", dates, want)
	}
}

func TestSortExamDatesUnparsableLast(t *testing.T) {
	dates := []string{"not-a-date", "15.06.2021", "2021", "01.01.2020"}

	sortExamDates(dates)

	if dates[0] != "01.01.2020" || dates[1] != "15.06.2021" {
		t.Errorf("parsable dates not first: %v", dates)
	}
	if dates[2] == "01.01.2020" || dates[2] == "15.06.2021" {
		t.Errorf("unparsable dates not last: %v", dates)
	}
}
