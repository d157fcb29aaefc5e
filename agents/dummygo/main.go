package main

import (
	"bufio"
	"log"
	"math"
	"net"
	"os"
	"strconv"
)

// Minimal network agent: handshakes, then answers every tick with a
// thrust of fixed magnitude in a slowly rotating direction.

func CheckError(err error) {
	if err != nil {
		log.Panicln("Error: ", err)
	}
}

func main() {

	host, exists := os.LookupEnv("ARENAHOST")
	if !exists {
		log.Panicln("Missing ARENAHOST env variable")
	}

	port, exists := os.LookupEnv("ARENAPORT")
	if !exists {
		log.Panicln("Missing ARENAPORT env variable")
	}

	agentid, exists := os.LookupEnv("AGENTID")
	if !exists {
		log.Panicln("Missing AGENTID env variable")
	}

	conn, err := net.Dial("tcp4", host+":"+port)
	CheckError(err)
	defer conn.Close()

	// Handshake

	_, err = conn.Write([]byte("{\"AgentId\": \"" + agentid + "\", \"Type\": \"handshake\", \"Payload\": {\"Greetings\": \"Hello from dummygo !\"}}\n"))
	CheckError(err)

	reader := bufio.NewReader(conn)
	turn := 0

	for {
		_, err := reader.ReadBytes('\n')
		if err != nil {
			log.Panicln("Server closed the connection; ", err)
		}

		angle := float64(turn) / 100.0
		x := strconv.FormatFloat(2.0*math.Cos(angle), 'f', 4, 64)
		y := strconv.FormatFloat(2.0*math.Sin(angle), 'f', 4, 64)

		res := "{\"AgentId\": \"" + agentid + "\", \"Type\": \"mutations\", \"Payload\": {\"Mutations\": [{\"Method\": \"thrust\", \"Arguments\": {\"x\": " + x + ", \"y\": " + y + ", \"z\": 0}}]}}\n"
		_, err = conn.Write([]byte(res))
		CheckError(err)

		turn++
	}
}
