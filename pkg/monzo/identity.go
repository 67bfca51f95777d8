/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package monzo

// WhoAmI is the response to an identity check on an access token.
type WhoAmI struct {
	Authenticated bool   `json:"authenticated"`
	ClientID      string `json:"client_id"`
	UserID        string `json:"user_id"`
}

func (w *WhoAmI) UnmarshalJSON(data []byte) error {
	var out WhoAmI
	if err := decodeFields(data,
		bind("authenticated", &out.Authenticated),
		bind("client_id", &out.ClientID),
		bind("user_id", &out.UserID),
	); err != nil {
		return err
	}

	*w = out
	return nil
}
