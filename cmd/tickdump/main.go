// tickdump converts a CSV quote export into the packed binary layout the
// historical tick source replays.
package main

import (
	"encoding/binary"
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/peter-kozarec/resample/pkg/datasource/historical"
)

func main() {
	csvPath := flag.String("in", "", "input CSV (ts, bid, ask, bid_volume, ask_volume)")
	binPath := flag.String("out", "", "output binary tick file")
	flag.Parse()

	if *csvPath == "" || *binPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	binFile, err := os.Create(*binPath)
	if err != nil {
		log.Fatal(err)
	}
	defer func(binFile *os.File) {
		_ = binFile.Close()
	}(binFile)

	if err := dumpIt(*csvPath, binFile); err != nil {
		log.Fatal(err)
	}
}

func dumpIt(csvPath string, binFile *os.File) error {
	csvFile, err := os.Open(csvPath)
	if err != nil {
		return err
	}
	defer func(csvFile *os.File) {
		_ = csvFile.Close()
	}(csvFile)

	reader := csv.NewReader(csvFile)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return err
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		ts, err := time.Parse("2006-01-02 15:04:05.999999999Z07:00", record[0])
		if err != nil {
			return err
		}

		bidPrice, _ := strconv.ParseFloat(record[1], 64)
		askPrice, _ := strconv.ParseFloat(record[2], 64)
		bidVolume, _ := strconv.ParseFloat(record[3], 64)
		askVolume, _ := strconv.ParseFloat(record[4], 64)

		tick := historical.BinaryTick{
			TimeStamp: ts.UnixNano(),
			Bid:       bidPrice,
			Ask:       askPrice,
			BidVolume: bidVolume,
			AskVolume: askVolume,
		}
		if err := binary.Write(binFile, binary.LittleEndian, tick); err != nil {
			return err
		}
	}

	return nil
}
