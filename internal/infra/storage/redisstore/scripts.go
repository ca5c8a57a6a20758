package redisstore

import "github.com/redis/go-redis/v9"

// KEYS: slot hash, carer index, carers set
// ARGV: carer_id, date_time_slot, date, time_slot, availability, has_name, name
var putIfAbsentScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  return 0
end
redis.call('HSET', KEYS[1],
  'carer_id', ARGV[1],
  'date_time_slot', ARGV[2],
  'date', ARGV[3],
  'time_slot', ARGV[4],
  'availability', ARGV[5])
if ARGV[6] == '1' then
  redis.call('HSET', KEYS[1], 'booking_person_name', ARGV[7])
end
redis.call('ZADD', KEYS[2], 0, ARGV[2])
redis.call('SADD', KEYS[3], ARGV[1])
return 1
`)

// KEYS: slot hash
// ARGV: expected availability, next availability, has_name, name
var compareAndSetScript = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'availability')
if not current or current ~= ARGV[1] then
  return 0
end
redis.call('HSET', KEYS[1], 'availability', ARGV[2])
if ARGV[3] == '1' then
  redis.call('HSET', KEYS[1], 'booking_person_name', ARGV[4])
else
  redis.call('HDEL', KEYS[1], 'booking_person_name')
end
return 1
`)
