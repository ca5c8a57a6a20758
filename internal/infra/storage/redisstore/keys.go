package redisstore

import "fmt"

// Key patterns, all namespaced so several deployments can share a server:
//
//	careslots:{ns}:slot:{carer_id}:{date_time_slot}  hash with the slot fields
//	careslots:{ns}:carer:{carer_id}                  ZSET of date_time_slot, score 0 (lex index)
//	careslots:{ns}:carers                            SET of carer ids

func slotKey(namespace, carerID, dateTimeSlot string) string {
	return fmt.Sprintf("careslots:%s:slot:%s:%s", namespace, carerID, dateTimeSlot)
}

func carerIndexKey(namespace, carerID string) string {
	return fmt.Sprintf("careslots:%s:carer:%s", namespace, carerID)
}

func carersKey(namespace string) string {
	return fmt.Sprintf("careslots:%s:carers", namespace)
}
