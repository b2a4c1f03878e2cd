package container

import "errors"

type Kind string

const (
	KindGeneric     Kind = "GENERIC"
	KindPlayer      Kind = "PLAYER"
	KindMount       Kind = "MOUNT"
	KindUnsupported Kind = "UNSUPPORTED"
)

var ErrUnknownKind = errors.New("unknown container kind")

var Kinds = []Kind{KindGeneric, KindPlayer, KindMount, KindUnsupported}

func ParseKind(val string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == val {
			return k, nil
		}
	}
	return KindUnsupported, ErrUnknownKind
}
